package api

// ErrorResponse is the body of every non-200 JSON reply.
type ErrorResponse struct {
	Error   string `json:"error" example:"No message provided"`
	Details string `json:"details,omitempty" example:"The OpenAI API key is invalid or expired."`
}

type HealthResponse struct {
	Status              string `json:"status" example:"healthy"`
	ServicesInitialized bool   `json:"services_initialized" example:"false"`
	PineconeKey         bool   `json:"pinecone_key" example:"true"`
	OpenAIKey           bool   `json:"openai_key" example:"true"`
}

type DebugResponse struct {
	PineconeKey         bool   `json:"pinecone_key" example:"true"`
	OpenAIKey           bool   `json:"openai_key" example:"true"`
	ServicesInitialized bool   `json:"services_initialized" example:"true"`
	Environment         string `json:"environment" example:"development"`
}

type TestResponse struct {
	Status      string `json:"status" example:"ok"`
	Message     string `json:"message" example:"App is working!"`
	PineconeKey bool   `json:"pinecone_key" example:"true"`
	OpenAIKey   bool   `json:"openai_key" example:"true"`
}

// requests---------------------

// ChatRequest documents the form/query field read by /get.
type ChatRequest struct {
	Msg string `json:"msg" form:"msg" validate:"required" example:"What are the symptoms of anemia?"`
}

// AskToolInput is the argument object of the MCP "ask" tool.
type AskToolInput struct {
	Message string `json:"message"`
}
