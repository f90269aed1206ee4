package handler

import (
	"time"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
)

// Sortable column sets, one per entity. These are the only sortBy values a
// list endpoint honors; anything else leaves the page in remote order.
// Column names match the JSON field names clients already see.

var launchColumns = listview.Columns[model.Launch]{
	"name":    listview.StringColumn(func(l model.Launch) string { return l.Name }),
	"vehicle": listview.StringColumn(func(l model.Launch) string { return l.Vehicle }),
	"pad":     listview.StringColumn(func(l model.Launch) string { return l.Pad }),
	"window":  listview.TimeColumn(func(l model.Launch) time.Time { return l.Window }),
	"status":  listview.StringColumn(func(l model.Launch) string { return l.Status }),
}

var missionColumns = listview.Columns[model.Mission]{
	"name":   listview.StringColumn(func(m model.Mission) string { return m.Name }),
	"agency": listview.StringColumn(func(m model.Mission) string { return m.Agency }),
}

var boatColumns = listview.Columns[model.Boat]{
	"name":     listview.StringColumn(func(b model.Boat) string { return b.Name }),
	"capacity": listview.IntColumn(func(b model.Boat) int64 { return int64(b.Capacity) }),
}

var tripColumns = listview.Columns[model.Trip]{
	"departure":   listview.TimeColumn(func(t model.Trip) time.Time { return t.Departure }),
	"price_cents": listview.IntColumn(func(t model.Trip) int64 { return t.PriceCents }),
	"capacity":    listview.IntColumn(func(t model.Trip) int64 { return int64(t.Capacity) }),
	"status":      listview.StringColumn(func(t model.Trip) string { return t.Status }),
}

var merchandiseColumns = listview.Columns[model.MerchandiseItem]{
	"name":        listview.StringColumn(func(m model.MerchandiseItem) string { return m.Name }),
	"sku":         listview.StringColumn(func(m model.MerchandiseItem) string { return m.SKU }),
	"price_cents": listview.IntColumn(func(m model.MerchandiseItem) int64 { return m.PriceCents }),
	"stock":       listview.IntColumn(func(m model.MerchandiseItem) int64 { return int64(m.Stock) }),
}

var bookingColumns = listview.Columns[model.Booking]{
	"customer_name": listview.StringColumn(func(b model.Booking) string { return b.CustomerName }),
	"email":         listview.StringColumn(func(b model.Booking) string { return b.Email }),
	"tickets":       listview.IntColumn(func(b model.Booking) int64 { return int64(b.Tickets) }),
	"total_cents":   listview.IntColumn(func(b model.Booking) int64 { return b.TotalCents }),
	"status":        listview.StringColumn(func(b model.Booking) string { return b.Status }),
}

var discountColumns = listview.Columns[model.DiscountCode]{
	"code":        listview.StringColumn(func(d model.DiscountCode) string { return d.Code }),
	"percent_off": listview.IntColumn(func(d model.DiscountCode) int64 { return int64(d.PercentOff) }),
	"active":      listview.BoolColumn(func(d model.DiscountCode) bool { return d.Active }),
}
