package dto

// TransferSuggestionDTO traslado sugerido entre ubicaciones.
type TransferSuggestionDTO struct {
	ProductID        string `json:"product_id"`
	FromLocationID   string `json:"from_location_id"`
	FromLocationName string `json:"from_location_name"`
	ToLocationID     string `json:"to_location_id"`
	ToLocationName   string `json:"to_location_name"`
	Quantity         int    `json:"quantity"`
	Reason           string `json:"reason"`
	Priority         string `json:"priority"` // high | medium | low
}

// TransferResponse respuesta de GET /api/transfers.
type TransferResponse struct {
	ProductID       string                  `json:"product_id"`
	Locations       int                     `json:"locations"`
	Transfers       []TransferSuggestionDTO `json:"transfers"`
	Redistributions []TransferSuggestionDTO `json:"redistributions"` // perecederos próximos a vencer
}
