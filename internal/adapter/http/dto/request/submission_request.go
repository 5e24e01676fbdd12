package request

type SubmissionRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

type ChannelAliasRequest struct {
	Alias string `json:"alias"`
}
