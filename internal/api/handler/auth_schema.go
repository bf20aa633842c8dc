package handler

// cadastroForm is the Usuario registration submission.
type cadastroForm struct {
	Nome           string `form:"nome" validate:"required"`
	Email          string `form:"email" validate:"required,email"`
	Senha          string `form:"senha" validate:"required,min=5,contemnumero"`
	ConfirmarSenha string `form:"confirmarSenha" validate:"required,eqfield=Senha"`
}

// cadastroONGForm is the organization registration submission. The activity
// flags arrive as checkbox values and are coerced separately.
type cadastroONGForm struct {
	Nome              string `form:"nome" validate:"required"`
	CNPJ              string `form:"cnpj" validate:"required"`
	Email             string `form:"email" validate:"required,email"`
	Telefone          string `form:"telefone" validate:"required"`
	Instagram         string `form:"instagram" validate:"required"`
	CEP               string `form:"cep" validate:"required"`
	AtuaEmGrandeNatal string `form:"atuaEmGrandeNatal"`
	TrabalhaComCaes   string `form:"trabalhaComCaes"`
	TrabalhaComGatos  string `form:"trabalhaComGatos"`
	TrabalhaComOutros string `form:"trabalhaComOutros"`
	Senha             string `form:"senha" validate:"required,min=5,contemnumero"`
	ConfirmarSenha    string `form:"confirmarSenha" validate:"required,eqfield=Senha"`
}

// loginForm selects the account kind with tipo; anything other than
// "usuario" logs into the organization store.
type loginForm struct {
	Email string `form:"email"`
	Senha string `form:"senha"`
	Tipo  string `form:"tipo"`
}

// checkboxOn coerces an HTML checkbox value into a boolean.
func checkboxOn(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}
