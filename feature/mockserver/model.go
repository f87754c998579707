package mockserver

import "time"

// Fixture is a row of the mock_fixtures table.
type Fixture struct {
	Name      string `gorm:"column:name;primaryKey;size:191"`
	Body      string `gorm:"column:body;type:longtext;not null"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by Fixture to `mock_fixtures`.
func (Fixture) TableName() string {
	return "mock_fixtures"
}
