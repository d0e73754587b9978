package catalog

import "roomBooker/internal/models"

func DefaultEquipment() []models.Equipment {
	return []models.Equipment{
		{ID: 1, Name: "Projector"},
		{ID: 2, Name: "Whiteboard"},
		{ID: 3, Name: "TV screen"},
		{ID: 4, Name: "Video conferencing system"},
		{ID: 5, Name: "High-speed WiFi"},
		{ID: 6, Name: "Air conditioning"},
		{ID: 7, Name: "Modular tables"},
		{ID: 8, Name: "Flipchart"},
	}
}

func DefaultRooms() []models.Room {
	return []models.Room{
		{
			ID:           1,
			Name:         "Alpha",
			Capacity:     20,
			EquipmentIDs: []int{1, 2, 5, 6},
			Image:        "https://images.pexels.com/photos/416320/pexels-photo-416320.jpeg",
			Description:  "Large bright room for team meetings and client presentations.",
			PricePerHour: 5000,
		},
		{
			ID:           2,
			Name:         "Beta",
			Capacity:     8,
			EquipmentIDs: []int{2, 5, 8},
			Image:        "https://images.pexels.com/photos/260928/pexels-photo-260928.jpeg",
			Description:  "Mid-sized room for small meetings and interviews.",
			PricePerHour: 30000,
		},
		{
			ID:           3,
			Name:         "Gamma",
			Capacity:     30,
			EquipmentIDs: []int{1, 3, 4, 5, 6, 7},
			Image:        "https://images.pexels.com/photos/1181406/pexels-photo-1181406.jpeg",
			Description:  "Our largest room, equipped for conferences and training sessions.",
			PricePerHour: 8000,
		},
		{
			ID:           4,
			Name:         "Delta",
			Capacity:     6,
			EquipmentIDs: []int{5, 6},
			Image:        "https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg",
			Description:  "Small quiet room for working sessions and private calls.",
			PricePerHour: 25000,
		},
		{
			ID:           5,
			Name:         "Epsilon",
			Capacity:     12,
			EquipmentIDs: []int{1, 2, 4, 5, 8},
			Image:        "https://images.pexels.com/photos/1181395/pexels-photo-1181395.jpeg",
			Description:  "Versatile room for presentations and workshops.",
			PricePerHour: 4500,
		},
		{
			ID:           6,
			Name:         "Zeta",
			Capacity:     15,
			EquipmentIDs: []int{1, 2, 3, 5, 6},
			Image:        "https://images.pexels.com/photos/1170412/pexels-photo-1170412.jpeg",
			Description:  "Modern uncluttered space for focused meetings.",
			PricePerHour: 55000,
		},
	}
}

func Default() *Catalog {
	return New(DefaultRooms(), DefaultEquipment())
}
