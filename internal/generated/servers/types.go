package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for RouteStatus.
const (
	RouteStatusActive    RouteStatus = "active"
	RouteStatusCancelled RouteStatus = "cancelled"
	RouteStatusCompleted RouteStatus = "completed"
)

// Defines values for ShipmentStatus.
const (
	ShipmentStatusAccepted  ShipmentStatus = "accepted"
	ShipmentStatusCancelled ShipmentStatus = "cancelled"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusPending   ShipmentStatus = "pending"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewRoute defines model for NewRoute.
type NewRoute struct {
	ArrivalTime   time.Time           `json:"arrivalTime"`
	CarrierId     string              `json:"carrierId"`
	DepartureTime time.Time           `json:"departureTime"`
	Destination   string              `json:"destination"`
	Id            *openapi_types.UUID `json:"id,omitempty"`

	// MaxWeight Kilograms
	MaxWeight  float64 `json:"maxWeight"`
	Origin     string  `json:"origin"`
	PricePerKg float64 `json:"pricePerKg"`
}

// NewShipment defines model for NewShipment.
type NewShipment struct {
	Description *string             `json:"description,omitempty"`
	Id          *openapi_types.UUID `json:"id,omitempty"`
	RouteId     openapi_types.UUID  `json:"routeId"`
	SenderId    string              `json:"senderId"`

	// Weight Kilograms
	Weight float64 `json:"weight"`
}

// Route defines model for Route.
type Route struct {
	ArrivalTime       time.Time          `json:"arrivalTime"`
	AvailableCapacity float64            `json:"availableCapacity"`
	CarrierId         string             `json:"carrierId"`
	DepartureTime     time.Time          `json:"departureTime"`
	Destination       string             `json:"destination"`
	Id                openapi_types.UUID `json:"id"`
	MaxWeight         float64            `json:"maxWeight"`
	Origin            string             `json:"origin"`
	PricePerKg        float64            `json:"pricePerKg"`
	Status            RouteStatus        `json:"status"`
}

// RouteStatus defines model for RouteStatus.
type RouteStatus string

// RouteStatusChange defines model for RouteStatusChange.
type RouteStatusChange struct {
	Status RouteStatus `json:"status"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	RouteId     openapi_types.UUID `json:"routeId"`
	SenderId    string             `json:"senderId"`
	Status      ShipmentStatus     `json:"status"`
	Weight      float64            `json:"weight"`
}

// ShipmentStatus defines model for ShipmentStatus.
type ShipmentStatus string

// ShipmentStatusChange defines model for ShipmentStatusChange.
type ShipmentStatusChange struct {
	Status ShipmentStatus `json:"status"`
}

// RouteId defines model for RouteId.
type RouteId = openapi_types.UUID

// ShipmentId defines model for ShipmentId.
type ShipmentId = openapi_types.UUID

// SearchRoutesParams defines parameters for SearchRoutes.
type SearchRoutesParams struct {
	Origin      *string    `form:"origin,omitempty" json:"origin,omitempty"`
	Destination *string    `form:"destination,omitempty" json:"destination,omitempty"`
	FromDate    *time.Time `form:"fromDate,omitempty" json:"fromDate,omitempty"`
	ToDate      *time.Time `form:"toDate,omitempty" json:"toDate,omitempty"`
}

// ListShipmentsParams defines parameters for ListShipments.
type ListShipmentsParams struct {
	UserId *string         `form:"userId,omitempty" json:"userId,omitempty"`
	Status *ShipmentStatus `form:"status,omitempty" json:"status,omitempty"`
}

// CreateRouteJSONRequestBody defines body for CreateRoute for application/json ContentType.
type CreateRouteJSONRequestBody = NewRoute

// ChangeRouteStatusJSONRequestBody defines body for ChangeRouteStatus for application/json ContentType.
type ChangeRouteStatusJSONRequestBody = RouteStatusChange

// RequestShipmentJSONRequestBody defines body for RequestShipment for application/json ContentType.
type RequestShipmentJSONRequestBody = NewShipment

// TransitionShipmentJSONRequestBody defines body for TransitionShipment for application/json ContentType.
type TransitionShipmentJSONRequestBody = ShipmentStatusChange
