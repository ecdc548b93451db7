package health

// Input is empty; the probe takes no parameters.
type Input struct{}

// Output wraps the probe response body.
type Output struct {
	Body Response
}

// Response reports whether the service is serving traffic.
type Response struct {
	Status string `json:"status" example:"OK" doc:"Current service status"`
}
