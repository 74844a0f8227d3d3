package dto

import (
	"time"

	"github.com/itemshare/rental-service/internal/models"
	"github.com/itemshare/rental-service/internal/service"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     uint   `json:"owner_id"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	Comments []CommentResponse `json:"comments"`
}

type ItemOwnerResponse struct {
	ItemResponse
	LastBooking *time.Time        `json:"last_booking,omitempty"`
	NextBooking *time.Time        `json:"next_booking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type BookingResponse struct {
	ID      uint                 `json:"id"`
	Start   time.Time            `json:"start"`
	End     time.Time            `json:"end"`
	Status  models.BookingStatus `json:"status"`
	Item    *ItemResponse        `json:"item,omitempty"`
	Booker  *UserResponse        `json:"booker,omitempty"`
	Created time.Time            `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
	}
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{ID: c.ID, Text: c.Text, Created: c.Created}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToCommentResponses(comments []models.Comment) []CommentResponse {
	resp := make([]CommentResponse, len(comments))
	for i, c := range comments {
		resp[i] = ToCommentResponse(&c)
	}
	return resp
}

func ToItemDetailResponse(i *models.Item) ItemDetailResponse {
	return ItemDetailResponse{
		ItemResponse: ToItemResponse(i),
		Comments:     ToCommentResponses(i.Comments),
	}
}

func ToItemOwnerResponse(view *service.ItemWithBookings) ItemOwnerResponse {
	return ItemOwnerResponse{
		ItemResponse: ToItemResponse(&view.Item),
		LastBooking:  view.LastBooking,
		NextBooking:  view.NextBooking,
		Comments:     ToCommentResponses(view.Comments),
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:      b.ID,
		Start:   b.Start,
		End:     b.End,
		Status:  b.Status,
		Created: b.CreatedAt,
	}
	if b.Item != nil {
		item := ToItemResponse(b.Item)
		resp.Item = &item
	}
	if b.Booker != nil {
		booker := ToUserResponse(b.Booker)
		resp.Booker = &booker
	}
	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = ToBookingResponse(&b)
	}
	return resp
}
