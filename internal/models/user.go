package models

import "time"

// User mirrors a row of the USUARIO table.
type User struct {
	ID           int64     `db:"id_usuario"`
	Username     string    `db:"usuario"`
	Name         string    `db:"nome"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"senha_hash"`
	CreatedAt    time.Time `db:"criado_em"`
}
