package store

import "pvzadmin/pkg/model"

// SeedWarehouses returns the static warehouse registry. wh-1 doubles as
// the legacy single-warehouse accessor's answer.
func SeedWarehouses() []model.Warehouse {
	return []model.Warehouse{
		{ID: "wh-1", Name: "Склад Москва", Address: "г. Москва, ул. Примерная, д. 1"},
		{ID: "wh-2", Name: "Склад Казань", Address: "г. Казань, ул. Баумана, д. 58"},
	}
}

// SeedPickupPoints returns the read-only display pickup points.
func SeedPickupPoints() []model.PickupPoint {
	return []model.PickupPoint{
		{
			ID: "pvz-1", Name: "Новинский",
			Address:     "Москва, Новинский бульвар, д. 8",
			WarehouseID: "wh-1", Phone: "+7 (495) 000-00-01",
			WorkingHours: "Пн–Пт, 10:00–23:00\nСб–Вс, 09:00–18:00",
		},
		{
			ID: "pvz-2", Name: "Варшавка",
			Address:     "Москва, Варшавское шоссе, д. 97, Ритейл Парк",
			WarehouseID: "wh-1", Phone: "+7 (495) 000-00-02",
			WorkingHours: "Ежедневно, 10:00–23:00",
		},
		{
			ID: "pvz-3", Name: "Боровское",
			Address:     "Москва, Багратионовский проезд, д. 5",
			WarehouseID: "wh-1", Phone: "+7 (495) 000-00-03",
			WorkingHours: "Ежедневно, 10:00–23:00",
		},
		{
			ID: "pvz-4", Name: "Филион",
			Address:     "Москва, Сосенское, Калужское шоссе, д. 10, стр. 8, км. 0",
			WarehouseID: "wh-1", Phone: "+7 (495) 000-00-04",
			WorkingHours: "Ежедневно, 10:00–23:00",
		},
		{
			ID: "pvz-5", Name: "Белая дача",
			Address:     "Москва, Говорово, МКАД, д. с22",
			WarehouseID: "wh-1", Phone: "+7 (495) 000-00-05",
			WorkingHours: "Пн–выходной\nВт–Вс, 10:00–23:00",
		},
		{
			ID: "pvz-6", Name: "Невский",
			Address:     "Санкт-Петербург, Невский проспект, д. 15",
			WarehouseID: "wh-1", Phone: "+7 (812) 000-00-06",
			WorkingHours: "Пн–Пт, 10:00–23:00\nСб–Вс, 09:00–18:00",
		},
		{
			ID: "pvz-7", Name: "Бауманская",
			Address:     "Казань, Баумана улица, д. 22",
			WarehouseID: "wh-1", Phone: "+7 (843) 000-00-07",
			WorkingHours: "Ежедневно, 10:00–23:00",
		},
		{
			ID: "pvz-8", Name: "Лесной",
			Address:     "Екатеринбург, Лесной проспект, д. 30",
			WarehouseID: "wh-1", Phone: "+7 (343) 000-00-08",
			WorkingHours: "Ежедневно, 10:00–23:00",
		},
		{
			ID: "pvz-9", Name: "Гармония",
			Address:     "Новосибирск, Красный проспект, д. 45",
			WarehouseID: "wh-1", Phone: "+7 (383) 000-00-09",
			WorkingHours: "Ежедневно, 09:00–22:00",
		},
		{
			ID: "pvz-10", Name: "Ленинский",
			Address:     "Волгоград, проспект Ленина, д. 12",
			WarehouseID: "wh-1", Phone: "+7 (844) 000-00-10",
			WorkingHours: "Ежедневно, 09:00–23:00",
		},
	}
}
