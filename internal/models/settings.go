package models

// CompanySettings is the company profile printed on receipts and order slips.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	CNPJ    string `json:"cnpj"`
	Logo    string `json:"logo"`
}

type UserSettings struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Notifications bool   `json:"notifications"`
	EmailAlerts   bool   `json:"emailAlerts"`
	SoundEffects  bool   `json:"soundEffects"`
}

type SystemSettings struct {
	AutoBackup             bool `json:"autoBackup"`
	LowStockAlert          int  `json:"lowStockAlert"`
	DefaultServiceWarranty int  `json:"defaultServiceWarranty"`
	PrintReceipts          bool `json:"printReceipts"`
	DarkMode               bool `json:"darkMode"`
}

func DefaultCompanySettings() CompanySettings {
	return CompanySettings{Name: "JPSOLUTECH"}
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		Name:          "Admin",
		Email:         "admin@techassist.com",
		Notifications: true,
		EmailAlerts:   true,
	}
}

func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		AutoBackup:             true,
		LowStockAlert:          5,
		DefaultServiceWarranty: 90,
		PrintReceipts:          true,
	}
}
