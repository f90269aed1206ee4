// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Entity names used as list-view cache-invalidation keys.
// A single source of truth keeps services and handlers from drifting apart.
const (
	EntityLaunches    = "launches"
	EntityMissions    = "missions"
	EntityTrips       = "trips"
	EntityBoats       = "boats"
	EntityMerchandise = "merchandise"
	EntityBookings    = "bookings"
	EntityDiscounts   = "discounts"
)

// Launch represents a rocket launch customers can book viewing trips for.
type Launch struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Vehicle   string    `json:"vehicle"`
	Pad       string    `json:"pad"`
	Window    time.Time `json:"window"`
	Status    string    `json:"status"` // scheduled, scrubbed, launched
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mission describes the payload/mission a launch carries.
type Mission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Agency      string    `json:"agency"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Boat is a vessel used for viewing trips.
type Boat struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Trip is a scheduled boat departure tied to a launch.
// Capacity is frozen at creation time so later boat edits don't oversell.
type Trip struct {
	ID         int64     `json:"id"`
	LaunchID   int64     `json:"launch_id"`
	BoatID     int64     `json:"boat_id"`
	Departure  time.Time `json:"departure"`
	PriceCents int64     `json:"price_cents"`
	Capacity   int       `json:"capacity"`
	Status     string    `json:"status"` // open, departed, cancelled
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MerchandiseItem is a store item sold alongside trips.
type MerchandiseItem struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Booking is a customer reservation on a trip.
// ConfirmationCode is the public lookup handle; the numeric ID stays internal.
type Booking struct {
	ID               int64     `json:"id"`
	TripID           int64     `json:"trip_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	CustomerName     string    `json:"customer_name"`
	Email            string    `json:"email"`
	Tickets          int       `json:"tickets"`
	TotalCents       int64     `json:"total_cents"`
	Status           string    `json:"status"` // confirmed, cancelled
	DiscountID       *int64    `json:"discount_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DiscountCode reduces a booking total by a percentage.
type DiscountCode struct {
	ID         int64      `json:"id"`
	Code       string     `json:"code"`
	PercentOff int        `json:"percent_off"`
	Active     bool       `json:"active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
