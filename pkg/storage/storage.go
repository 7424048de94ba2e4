package storage

// Persistence keys. The primary key holds the whole application state as one
// JSON document; the settings documents each live under their own key.
const (
	KeyAppState        = "techAssistanceData"
	KeyCompanySettings = "companySettings"
	KeyUserSettings    = "userSettings"
	KeySystemSettings  = "systemSettings"
)

// Store is a key -> JSON document store. Read returns ok=false when the key
// has never been written.
type Store interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}
