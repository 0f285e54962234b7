package models

// All returns every persisted model in dependency order, for migration.
func All() []interface{} {
	return []interface{}{
		&Role{},
		&User{},
		&EmergencyReport{},
		&RescueTask{},
		&Shelter{},
		&Resource{},
		&ResourceDistribution{},
		&Notification{},
	}
}
