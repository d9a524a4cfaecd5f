package domain

// Entities the gateway reasons about. All of them are owned by the
// downstream services; the gateway never holds authoritative state and only
// keeps these values for the lifetime of a single request.

// Condition describes the physical state of a book copy
type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionBad       Condition = "BAD"
)

// ReservationStatus is the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationRented   ReservationStatus = "RENTED"
	ReservationReturned ReservationStatus = "RETURNED"
	ReservationExpired  ReservationStatus = "EXPIRED"
)

// Library is catalog metadata for a library branch
type Library struct {
	LibraryUID string `json:"libraryUid"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Address    string `json:"address"`
}

// Book is catalog metadata for a book title
type Book struct {
	BookUID   string    `json:"bookUid"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Condition Condition `json:"condition"`
}

// Reservation is a rental record owned by the reservation service
type Reservation struct {
	ReservationUID string            `json:"reservationUid"`
	BookUID        string            `json:"bookUid"`
	LibraryUID     string            `json:"libraryUid"`
	UserName       string            `json:"userName,omitempty"`
	Status         ReservationStatus `json:"status"`
	StartDate      string            `json:"startDate"`
	TillDate       string            `json:"tillDate"`
}

// UserRating is the user's star count, interpreted as the maximum number of
// simultaneous active rentals
type UserRating struct {
	Stars int `json:"stars"`
}

// CreateReservationRequest is the body forwarded to the reservation service
type CreateReservationRequest struct {
	BookUID    string `json:"bookUid"`
	LibraryUID string `json:"libraryUid"`
	TillDate   string `json:"tillDate"`
}

// ReturnReservationRequest is the body forwarded on book return
type ReturnReservationRequest struct {
	Condition string `json:"condition"`
	Date      string `json:"date"`
}
