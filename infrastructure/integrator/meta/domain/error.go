package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// HasError indica se o payload carrega um marcador de erro embutido
func (e *ErrorResponse) HasError() bool {
	return e != nil && e.Error != nil
}

// IsTokenError verifica se o erro é de token inválido ou expirado.
// O código 190 representa token expirado; subcódigos 460/463/467 são
// variações de problemas de token.
func (e *ErrorResponse) IsTokenError() bool {
	if !e.HasError() {
		return false
	}

	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" &&
			(e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
