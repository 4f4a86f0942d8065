package domain

import "github.com/golang-jwt/jwt/v5"

// Roles de usuário reconhecidos pela API. A gestão de usuários e sessões é
// responsabilidade do serviço de autenticação; aqui apenas validamos o JWT
const (
	RoleAdmin    = 1
	RoleOperator = 2
)

// Claims são as claims do JWT emitido pelo serviço de autenticação
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
