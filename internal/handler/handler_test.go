package handler

// responseEnvelope mirrors the wire shape of response.Envelope for test
// assertions.
type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}
