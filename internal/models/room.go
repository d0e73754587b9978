package models

type Room struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	EquipmentIDs []int  `json:"equipment_ids"`
	Image        string `json:"image,omitempty"`
	Description  string `json:"description,omitempty"`
	PricePerHour int    `json:"price_per_hour"`
}

type Equipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
