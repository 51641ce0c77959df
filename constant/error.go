package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrInvalidInput
	ErrConflict
	ErrServer
	ErrUnclassified
	ErrUnreachable
	ErrNetworkTimeout
	ErrUnknown
	ErrValidation
	ErrSubmitInFlight
	ErrFormBlocked
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "Ressource non trouvée.",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrInvalidPassword: "password invalid",
	ErrInvalidInput:    "Données invalides. Vérifiez votre saisie.",
	ErrConflict:        "Conflit détecté (ex: horaires qui se chevauchent).",
	ErrServer:          "Erreur serveur. Réessayez plus tard.",
	ErrUnclassified:    "Erreur",
	ErrUnreachable:     "Impossible de contacter le serveur. Vérifiez votre connexion réseau.",
	ErrNetworkTimeout:  "Impossible de contacter le serveur. Vérifiez votre connexion réseau.",
	ErrUnknown:         "Erreur inconnue",
	ErrValidation:      "Le formulaire contient des erreurs",
	ErrSubmitInFlight:  "Une soumission est déjà en cours",
	ErrFormBlocked:     "Le produit n'a pas pu être chargé",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrInvalidPassword: http.StatusUnauthorized,
	ErrInvalidInput:    http.StatusBadRequest,
	ErrConflict:        http.StatusConflict,
	ErrServer:          http.StatusBadGateway,
	ErrUnclassified:    http.StatusBadGateway,
	ErrUnreachable:     http.StatusBadGateway,
	ErrNetworkTimeout:  http.StatusGatewayTimeout,
	ErrUnknown:         http.StatusInternalServerError,
	ErrValidation:      http.StatusUnprocessableEntity,
	ErrSubmitInFlight:  http.StatusConflict,
	ErrFormBlocked:     http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrInvalidPassword: "0005",
	ErrInvalidInput:    "0101",
	ErrConflict:        "0102",
	ErrServer:          "0103",
	ErrUnclassified:    "0104",
	ErrUnreachable:     "0105",
	ErrNetworkTimeout:  "0106",
	ErrUnknown:         "0107",
	ErrValidation:      "0201",
	ErrSubmitInFlight:  "0202",
	ErrFormBlocked:     "0203",
}
