package handler

import "testing"

func TestFormValidator_CadastroAllMissing(t *testing.T) {
	fv := NewFormValidator()

	errs := fv.Check(cadastroForm{})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %+v", len(errs), errs)
	}

	wantFields := []string{"nome", "email", "senha", "confirmarSenha"}
	for i, want := range wantFields {
		if errs[i].Field != want {
			t.Fatalf("error %d on field %q, want %q", i, errs[i].Field, want)
		}
		if errs[i].Message != "Este campo é obrigatório" {
			t.Fatalf("unexpected message for %q: %q", want, errs[i].Message)
		}
	}
}

func TestFormValidator_CadastroValid(t *testing.T) {
	fv := NewFormValidator()

	errs := fv.Check(cadastroForm{
		Nome: "Ana", Email: "a@a.com", Senha: "abc12", ConfirmarSenha: "abc12",
	})
	if errs != nil {
		t.Fatalf("expected success, got %+v", errs)
	}
}

func TestFormValidator_SenhaRules(t *testing.T) {
	fv := NewFormValidator()

	// Too short.
	errs := fv.Check(cadastroForm{
		Nome: "Ana", Email: "a@a.com", Senha: "a1", ConfirmarSenha: "a1",
	})
	if len(errs) != 1 || errs[0].Field != "senha" || errs[0].Message != "Senha muito curta" {
		t.Fatalf("expected short-password error, got %+v", errs)
	}

	// Long enough but no digit.
	errs = fv.Check(cadastroForm{
		Nome: "Ana", Email: "a@a.com", Senha: "abcde", ConfirmarSenha: "abcde",
	})
	if len(errs) != 1 || errs[0].Message != "A senha precisa conter um número" {
		t.Fatalf("expected digit-rule error, got %+v", errs)
	}
}

func TestFormValidator_ConfirmacaoDiferente(t *testing.T) {
	fv := NewFormValidator()

	errs := fv.Check(cadastroForm{
		Nome: "Ana", Email: "a@a.com", Senha: "abc12", ConfirmarSenha: "abc13",
	})
	if len(errs) != 1 || errs[0].Field != "confirmarSenha" || errs[0].Message != "As senhas precisam ser iguais" {
		t.Fatalf("expected confirmation mismatch error, got %+v", errs)
	}
}

func TestFormValidator_EmailInvalido(t *testing.T) {
	fv := NewFormValidator()

	errs := fv.Check(cadastroForm{
		Nome: "Ana", Email: "not-an-email", Senha: "abc12", ConfirmarSenha: "abc12",
	})
	if len(errs) != 1 || errs[0].Field != "email" || errs[0].Message != "Email inválido" {
		t.Fatalf("expected email error, got %+v", errs)
	}
}

func TestFormValidator_PetForm(t *testing.T) {
	fv := NewFormValidator()

	errs := fv.Check(petForm{Nome: "Rex", Sexo: "macho"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %+v", errs)
	}
	if errs[0].Field != "especie" || errs[1].Field != "raca" {
		t.Fatalf("unexpected fields: %+v", errs)
	}
}

func TestCheckboxOn(t *testing.T) {
	for _, v := range []string{"on", "true", "1"} {
		if !checkboxOn(v) {
			t.Fatalf("expected %q to read as checked", v)
		}
	}
	for _, v := range []string{"", "off", "false", "0"} {
		if checkboxOn(v) {
			t.Fatalf("expected %q to read as unchecked", v)
		}
	}
}
