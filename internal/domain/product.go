package domain

import (
	"context"
	"slices"
	"time"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Requester is the authenticated identity behind a mutating call.
type Requester struct {
	ID   int64
	Role Role
}

// Category groups assets on the blob substrate and prefixes their keys.
type Category string

const (
	CategoryProduct Category = "product"
	CategoryProfile Category = "profile"
)

var Categories = []Category{CategoryProduct, CategoryProfile}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// ProductRecord is the persisted shape of a product. Images holds the
// encoded asset list exactly as stored.
type ProductRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	OwnerID     int64     `json:"owner_id"`
	Image       string    `json:"image"`
	Images      string    `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductFields is what the coordinator hands to a ProductStore on create
// and update.
type ProductFields struct {
	Name        string
	Description string
	Price       int64
	OwnerID     int64
	Image       string
	Images      string
}

// Product is the read shape: asset list decoded and possibly materialized.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	OwnerID     int64     `json:"userId"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Origin is the scheme and host a client reached the service on. It is used
// to turn relative asset refs into absolute URLs.
type Origin struct {
	Scheme string
	Host   string
}

func (o Origin) IsZero() bool {
	return o.Scheme == "" || o.Host == ""
}

type originKey struct{}

func WithOrigin(ctx context.Context, o Origin) context.Context {
	return context.WithValue(ctx, originKey{}, o)
}

func OriginFromContext(ctx context.Context) Origin {
	o, _ := ctx.Value(originKey{}).(Origin)
	return o
}
