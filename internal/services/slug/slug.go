package slug

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const (
	codeLength     = 6
	maxAttempts    = 10
	codeAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	timeCodeLength = 10
)

// ExistenceChecker - минимальный срез хранилища, нужный генератору.
// Проверка учитывает и удаленные записи.
type ExistenceChecker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Generator выдает свободные slug'и. Проверка check-then-use принципиально
// гоночная: два конкурентных генератора могут увидеть один и тот же код
// свободным. Финальный арбитр - unique-ограничение хранилища на insert;
// генератор лишь сокращает видимые пользователю коллизии.
type Generator struct {
	storage ExistenceChecker
}

func NewGenerator(storage ExistenceChecker) *Generator {
	return &Generator{storage: storage}
}

// GenerateUnique подбирает случайный код за ограниченное число попыток.
// Если все попытки заняты, откатывается на код из хвоста монотонных часов
// в base36 - гарантия продвижения без бесконечного цикла.
func (g *Generator) GenerateUnique(ctx context.Context) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		candidate := randomCode()

		exists, err := g.storage.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return timeCode(), nil
}

func randomCode() string {
	b := make([]byte, codeLength)
	letterCount := big.NewInt(int64(len(codeAlphabet)))

	for i := range b {
		n, _ := rand.Int(rand.Reader, letterCount)
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}

func timeCode() string {
	code := strconv.FormatInt(time.Now().UnixNano(), 36)
	if len(code) > timeCodeLength {
		code = code[len(code)-timeCodeLength:]
	}
	return code
}
