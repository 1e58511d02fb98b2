package configs

import "dropy/internal/core/domain"

// Program identifies the deployed campaign program. ID is the base58
// identity every record is owned by and every address is derived under;
// changing it orphans existing records. RecordSpace is the buffer size
// allocated for new campaign records.
type Program struct {
	ID          domain.Identity `env:"ID" envDefault:"CiY9wnteTb6gxsUXvPs1NwWRsCM6oxekgUsNmh24fb2E"`
	RecordSpace int             `env:"RECORD_SPACE" envDefault:"129"`
}
