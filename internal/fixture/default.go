package fixture

import (
	"time"

	"streamquery/internal/model"

	"github.com/shopspring/decimal"
)

// Default returns a freshly built copy of the built-in dataset: 10 customers,
// 20 products in five categories and 24 orders placed between January and
// April 2021. Every order lists its products in ascending ID order, which is
// also the order the database-backed repositories return them in.
func Default() *Dataset {
	d := &Dataset{
		Customers: []*model.Customer{
			{ID: 1, Name: "Stefan Walker", Tier: 1},
			{ID: 2, Name: "Daija Von", Tier: 1},
			{ID: 3, Name: "Ariane Rodriguez", Tier: 1},
			{ID: 4, Name: "Marques Nikolaus", Tier: 2},
			{ID: 5, Name: "Rachelle Greenfelder", Tier: 3},
			{ID: 6, Name: "Larissa White", Tier: 2},
			{ID: 7, Name: "Fae Heidenreich", Tier: 1},
			{ID: 8, Name: "Dino Will", Tier: 2},
			{ID: 9, Name: "Eloy Stroman", Tier: 3},
			{ID: 10, Name: "Brisa O'Connell", Tier: 1},
		},
		Products: []*model.Product{
			product(1, "omnis quod consequatur", "Games", "184.83"),
			product(2, "vel libero suscipit", "Toys", "12.66"),
			product(3, "non nemo iure", "Grocery", "498.02"),
			product(4, "voluptatem voluptas aspernatur", "Toys", "536.80"),
			product(5, "animi cum rem", "Games", "458.20"),
			product(6, "dolorem porro debitis", "Toys", "146.52"),
			product(7, "aspernatur rerum qui", "Books", "656.42"),
			product(8, "deleniti earum et", "Baby", "41.46"),
			product(9, "voluptas ut quidem", "Books", "697.57"),
			product(10, "eos sed debitis", "Baby", "366.90"),
			product(11, "laudantium sit nihil", "Toys", "95.50"),
			product(12, "ullam est voluptatum", "Grocery", "120.18"),
			product(13, "ipsa consequatur et", "Books", "631.58"),
			product(14, "quas consequatur cumque", "Books", "99.99"),
			product(15, "qui quis nulla", "Books", "40.00"),
			product(16, "repellat non hic", "Baby", "15.30"),
			product(17, "totam illo quo", "Toys", "100.00"),
			product(18, "velit aperiam omnis", "books", "120.00"),
			product(19, "sed et quia", "Grocery", "8.15"),
			product(20, "mollitia facilis", "Games", "458.20"),
		},
		Orders: []*model.Order{
			order(1, 5, model.Date(2021, time.January, 10), 1, 2),
			order(2, 4, model.Date(2021, time.January, 15), 3, 7),
			order(3, 1, model.Date(2021, time.January, 22), 8),
			order(4, 6, model.Date(2021, time.February, 1), 9),
			order(5, 4, model.Date(2021, time.February, 10), 2, 10, 11),
			order(6, 2, model.Date(2021, time.February, 14), 12),
			order(7, 8, model.Date(2021, time.February, 20), 2, 13),
			order(8, 3, model.Date(2021, time.February, 28), 4, 5),
			order(9, 7, model.Date(2021, time.March, 2), 6),
			order(10, 6, model.Date(2021, time.March, 10), 14, 15),
			order(11, 9, model.Date(2021, time.March, 15), 16, 17),
			order(12, 1, model.Date(2021, time.March, 15), 8, 18),
			order(13, 4, model.Date(2021, time.March, 15), 1),
			order(14, 10, model.Date(2021, time.March, 20), 19),
			order(15, 2, model.Date(2021, time.March, 28), 5, 20),
			order(16, 8, model.Date(2021, time.April, 1), 3),
			order(17, 5, model.Date(2021, time.April, 5), 7, 9),
			order(18, 6, model.Date(2021, time.April, 15), 10),
			order(19, 3, model.Date(2021, time.April, 18), 11, 12),
			order(20, 7, model.Date(2021, time.April, 22), 13),
			order(21, 9, model.Date(2021, time.April, 25), 14),
			order(22, 1, model.Date(2021, time.April, 28), 15, 16),
			order(23, 10, model.Date(2021, time.April, 30), 17),
			order(24, 2, model.Date(2021, time.April, 30), 18, 19),
		},
	}

	if err := d.Link(); err != nil {
		panic(err)
	}
	return d
}

func product(id int64, name, category, price string) *model.Product {
	return &model.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
}

// order builds an order delivered five days after it was placed. Orders placed
// from 25 April 2021 onwards are still new.
func order(id, customerID int64, placed time.Time, productIDs ...int64) *model.Order {
	status := model.OrderStatusDelivered
	if !placed.Before(model.Date(2021, time.April, 25)) {
		status = model.OrderStatusNew
	}
	return &model.Order{
		ID:           id,
		CustomerID:   customerID,
		OrderDate:    placed,
		DeliveryDate: placed.AddDate(0, 0, 5),
		Status:       status,
		Products:     productRefs(productIDs...),
	}
}
