package model

import "time"

// AdEntity represents the ads table entity
type AdEntity struct {
	ID          uint64    `db:"id"`
	Title       string    `db:"title"`
	Price       int64     `db:"price"`
	Description string    `db:"description"`
	Image       *string   `db:"image"`
	AuthorID    uint64    `db:"author_id"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (a *AdEntity) ToResponse() AdResponse {
	return AdResponse{
		PK:     a.ID,
		Author: a.AuthorID,
		Image:  StringValue(a.Image),
		Price:  a.Price,
		Title:  a.Title,
	}
}

// AdDetail is an ad joined with its author's contact fields.
type AdDetail struct {
	AdEntity
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
	AuthorEmail     string `db:"author_email"`
	AuthorPhone     string `db:"author_phone"`
}

func (a *AdDetail) ToExtendedResponse() *ExtendedAdResponse {
	return &ExtendedAdResponse{
		PK:              a.ID,
		AuthorFirstName: a.AuthorFirstName,
		AuthorLastName:  a.AuthorLastName,
		Description:     a.Description,
		Email:           a.AuthorEmail,
		Image:           StringValue(a.Image),
		Phone:           a.AuthorPhone,
		Price:           a.Price,
		Title:           a.Title,
	}
}

type CreateOrUpdateAdRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Price       int64  `json:"price" validate:"gte=0,lte=10000000"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
}

type AdResponse struct {
	PK     uint64 `json:"pk"`
	Author uint64 `json:"author"`
	Image  string `json:"image"`
	Price  int64  `json:"price"`
	Title  string `json:"title"`
}

type AdsResponse struct {
	Count   int          `json:"count"`
	Results []AdResponse `json:"results"`
}

type ExtendedAdResponse struct {
	PK              uint64 `json:"pk"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
	Description     string `json:"description"`
	Email           string `json:"email"`
	Image           string `json:"image"`
	Phone           string `json:"phone"`
	Price           int64  `json:"price"`
	Title           string `json:"title"`
}

func NewAdsResponse(ads []AdEntity) *AdsResponse {
	res := &AdsResponse{Results: make([]AdResponse, 0, len(ads))}
	for i := range ads {
		res.Results = append(res.Results, ads[i].ToResponse())
	}
	res.Count = len(res.Results)
	return res
}
