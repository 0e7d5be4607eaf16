package model

// AllModels lists every table for AutoMigrate, in FK-friendly order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Form{},
		&Question{},
		&Answer{},
		&AISummary{},
	}
}
