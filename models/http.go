package models

// HealthResponse is the body of the health probe. The exported field name
// doubles as the JSON key: clients depend on the literal "CurrentTime".
type HealthResponse struct {
	// CurrentTime is the server's wall-clock time in RFC 3339 form.
	CurrentTime string `json:"CurrentTime"`
}
