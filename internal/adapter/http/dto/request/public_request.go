package request

// LookupRequest is the public order-status query. AccessToken is the optional
// per-order secret; a wrong or foreign token degrades to the tokenless view.
type LookupRequest struct {
	NumeroOS    int    `json:"numero_os"`
	AccessToken string `json:"access_token"`
}

// ChatRequest is the public assistant query about one order.
type ChatRequest struct {
	NumeroOS    int    `json:"numero_os"`
	Pergunta    string `json:"pergunta"`
	AccessToken string `json:"access_token"`
}
