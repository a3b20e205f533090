package usecase

// Idempotence guards against processing a redelivered update twice.
// Telegram long polling can replay updates after a restart.
type Idempotence struct {
	repo IdempotenceRepository
}

func NewIdempotence(repo IdempotenceRepository) *Idempotence {
	return &Idempotence{repo: repo}
}

// Execute returns true when id has not been seen before.
func (u *Idempotence) Execute(id string) (bool, error) {
	return u.repo.MakeRecord(id)
}
