package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adotanatal/adopet/internal/core/domain"
	"github.com/adotanatal/adopet/internal/core/ports"
)

// AuthService implements registration and login for both account kinds.
type AuthService struct {
	usuarios      ports.UsuarioRepository
	ongs          ports.ONGRepository
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthService(usuarios ports.UsuarioRepository, ongs ports.ONGRepository, sessionSecret string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = domain.SessionTTL
	}
	return &AuthService{usuarios: usuarios, ongs: ongs, sessionSecret: sessionSecret, sessionTTL: sessionTTL}
}

func (s *AuthService) RegisterUsuario(ctx context.Context, in ports.RegisterUsuarioInput) (*domain.Usuario, error) {
	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	usuario := &domain.Usuario{
		Nome:      in.Nome,
		Email:     in.Email,
		Senha:     string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.usuarios.Create(ctx, usuario)
}

func (s *AuthService) RegisterONG(ctx context.Context, in ports.RegisterONGInput) (*domain.ONG, error) {
	if in.Nome == "" || in.Email == "" || in.Senha == "" || in.CNPJ == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ong := &domain.ONG{
		Nome:              in.Nome,
		CNPJ:              in.CNPJ,
		Email:             in.Email,
		Telefone:          in.Telefone,
		Instagram:         in.Instagram,
		CEP:               in.CEP,
		AtuaEmGrandeNatal: in.AtuaEmGrandeNatal,
		TrabalhaComCaes:   in.TrabalhaComCaes,
		TrabalhaComGatos:  in.TrabalhaComGatos,
		TrabalhaComOutros: in.TrabalhaComOutros,
		Senha:             string(hash),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return s.ongs.Create(ctx, ong)
}

// Login looks the credential record up within the account kind selected by
// tipo, verifies the password and mints the signed session token. Any tipo
// other than "usuario" selects the organization store.
func (s *AuthService) Login(ctx context.Context, tipo, email, senha string) (string, *domain.Sessao, error) {
	if email == "" || senha == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	var sess domain.Sessao
	var digest string

	if tipo == domain.TipoUsuario {
		usuario, err := s.usuarios.FindByEmail(ctx, email)
		if err != nil {
			return "", nil, err
		}
		sess = domain.Sessao{Tipo: domain.TipoUsuario, ID: usuario.ID, Nome: usuario.Nome}
		digest = usuario.Senha
	} else {
		ong, err := s.ongs.FindByEmail(ctx, email)
		if err != nil {
			return "", nil, err
		}
		sess = domain.Sessao{Tipo: domain.TipoONG, ID: ong.ID, Nome: ong.Nome}
		digest = ong.Senha
	}

	if bcrypt.CompareHashAndPassword([]byte(digest), []byte(senha)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signSession(sess)
	if err != nil {
		return "", nil, err
	}

	return token, &sess, nil
}

func (s *AuthService) signSession(sess domain.Sessao) (string, error) {
	claims := jwt.MapClaims{
		"tipo": sess.Tipo,
		"id":   sess.ID,
		"nome": sess.Nome,
		"exp":  time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.sessionSecret))
}
