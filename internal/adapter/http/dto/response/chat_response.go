package response

type ChatResponse struct {
	Resposta string `json:"resposta"`
}
