package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adotanatal/adopet/internal/core/domain"
	"github.com/adotanatal/adopet/internal/core/ports"
)

type stubUsuarioRepo struct {
	byEmail map[string]*domain.Usuario
	nextID  int64
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{byEmail: make(map[string]*domain.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) Create(_ context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	if _, exists := r.byEmail[usuario.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	clone := *usuario
	clone.ID = r.nextID
	r.nextID++
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubONGRepo struct {
	byEmail map[string]*domain.ONG
	nextID  int64
}

func newStubONGRepo() *stubONGRepo {
	return &stubONGRepo{byEmail: make(map[string]*domain.ONG), nextID: 1}
}

func (r *stubONGRepo) Create(_ context.Context, ong *domain.ONG) (*domain.ONG, error) {
	if _, exists := r.byEmail[ong.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	clone := *ong
	clone.ID = r.nextID
	r.nextID++
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubONGRepo) FindByEmail(_ context.Context, email string) (*domain.ONG, error) {
	o, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *o
	return &clone, nil
}

func newAuthService() *AuthService {
	return NewAuthService(newStubUsuarioRepo(), newStubONGRepo(), "secret", time.Hour)
}

func TestAuthService_RegisterUsuario_HashesPassword(t *testing.T) {
	svc := newAuthService()

	usuario, err := svc.RegisterUsuario(context.Background(), ports.RegisterUsuarioInput{
		Nome: "Ana", Email: "a@a.com", Senha: "abc12",
	})
	if err != nil {
		t.Fatalf("RegisterUsuario returned error: %v", err)
	}
	if usuario.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if usuario.Senha == "abc12" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte("abc12")); err != nil {
		t.Fatalf("stored digest does not match password: %v", err)
	}
}

func TestAuthService_RegisterUsuario_DuplicateEmail(t *testing.T) {
	svc := newAuthService()

	in := ports.RegisterUsuarioInput{Nome: "Ana", Email: "a@a.com", Senha: "abc12"}
	if _, err := svc.RegisterUsuario(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.RegisterUsuario(context.Background(), in); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_RegisterONG_HashesPassword(t *testing.T) {
	svc := newAuthService()

	ong, err := svc.RegisterONG(context.Background(), ports.RegisterONGInput{
		Nome: "Abrigo Natal", CNPJ: "11.222.333/0001-44", Email: "ong@a.com",
		Telefone: "84999990000", Instagram: "@abrigonatal", CEP: "59000-000",
		AtuaEmGrandeNatal: true, TrabalhaComCaes: true, Senha: "abc12",
	})
	if err != nil {
		t.Fatalf("RegisterONG returned error: %v", err)
	}
	if ong.Senha == "abc12" {
		t.Fatalf("expected password to be hashed")
	}
	if !ong.AtuaEmGrandeNatal || !ong.TrabalhaComCaes || ong.TrabalhaComGatos {
		t.Fatalf("activity flags not carried over: %+v", ong)
	}
}

func TestAuthService_Login_Usuario(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.RegisterUsuario(context.Background(), ports.RegisterUsuarioInput{
		Nome: "Ana", Email: "a@a.com", Senha: "abc12",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, sess, err := svc.Login(context.Background(), domain.TipoUsuario, "a@a.com", "abc12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Tipo != domain.TipoUsuario || sess.Nome != "Ana" || sess.ID == 0 {
		t.Fatalf("unexpected session payload: %+v", sess)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["tipo"] != domain.TipoUsuario || claims["nome"] != "Ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_ONG(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.RegisterONG(context.Background(), ports.RegisterONGInput{
		Nome: "Abrigo", CNPJ: "1", Email: "ong@a.com", Senha: "abc12",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, sess, err := svc.Login(context.Background(), domain.TipoONG, "ong@a.com", "abc12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !sess.IsONG() {
		t.Fatalf("expected ong session, got %+v", sess)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService()

	_, _ = svc.RegisterUsuario(context.Background(), ports.RegisterUsuarioInput{
		Nome: "Ana", Email: "a@a.com", Senha: "abc12",
	})

	if _, _, err := svc.Login(context.Background(), domain.TipoUsuario, "a@a.com", "nope1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService()

	if _, _, err := svc.Login(context.Background(), domain.TipoUsuario, "ghost@a.com", "abc12"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_TipoSelectsStore(t *testing.T) {
	svc := newAuthService()

	// Registered only as an organization; a usuario login with the same
	// email must not find it.
	_, _ = svc.RegisterONG(context.Background(), ports.RegisterONGInput{
		Nome: "Abrigo", CNPJ: "1", Email: "shared@a.com", Senha: "abc12",
	})

	if _, _, err := svc.Login(context.Background(), domain.TipoUsuario, "shared@a.com", "abc12"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for wrong account kind, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), domain.TipoONG, "shared@a.com", "abc12"); err != nil {
		t.Fatalf("ong login failed: %v", err)
	}
}
