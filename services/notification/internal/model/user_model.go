package model

// ActorModel is the slice of a user needed to name them in a message.
type ActorModel struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey"`
	Username string `gorm:"column:username"`
	FullName string `gorm:"column:full_name"`
}

func (ActorModel) TableName() string {
	return "users"
}
