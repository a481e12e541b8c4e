package recipient

import "fmt"

var (
	ErrInvalidFormat   = fmt.Errorf("formato inválido, debe ser un alias (ej: lucas.piputto) o CBU de 22 dígitos")
	ErrAliasNotFound   = fmt.Errorf("alias no encontrado, probá con juan.perez")
	ErrAccountNotFound = fmt.Errorf("CBU no encontrado, probá con juan.perez")
)
