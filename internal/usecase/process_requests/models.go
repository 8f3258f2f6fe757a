package process_requests

// PreviewSize number of processed lines echoed back
const PreviewSize = 5

// Response outcome of one inbox run
type Response struct {
	Processed int
	Preview   []string // first PreviewSize lines
	Remaining int      // processed lines not in Preview
}
