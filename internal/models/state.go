package models

// AppState is the complete persisted application state: all five collections,
// serialized together as one JSON document under the primary storage key.
type AppState struct {
	Customers      []Customer      `json:"customers"`
	ServiceOrders  []ServiceOrder  `json:"serviceOrders"`
	Products       []Product       `json:"products"`
	Sales          []Sale          `json:"sales"`
	StockMovements []StockMovement `json:"stockMovements"`
}

// EmptyState returns a state with five empty (non-nil) collections, the
// fallback for an absent or corrupt persisted document.
func EmptyState() *AppState {
	return &AppState{
		Customers:      []Customer{},
		ServiceOrders:  []ServiceOrder{},
		Products:       []Product{},
		Sales:          []Sale{},
		StockMovements: []StockMovement{},
	}
}

// FindCustomer returns the customer with the given id, or nil.
func (s *AppState) FindCustomer(id string) *Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}

func (s *AppState) FindProduct(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

func (s *AppState) FindServiceOrder(id string) *ServiceOrder {
	for i := range s.ServiceOrders {
		if s.ServiceOrders[i].ID == id {
			return &s.ServiceOrders[i]
		}
	}
	return nil
}

func (s *AppState) FindSale(id string) *Sale {
	for i := range s.Sales {
		if s.Sales[i].ID == id {
			return &s.Sales[i]
		}
	}
	return nil
}
