package request

import "encoding/json"

// OrderPaymentCreateRequest is the optional envelope for the checkout route.
//
// `mp_payload` is forwarded as-is to support varying Mercado Pago schemas. A
// body without the envelope is treated as the payload itself.

type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
