// Package mascot picks the encouragement message shown after an expense is
// recorded. Each category maps to one of three fixed message pools.
package mascot

import (
	"math/rand"

	"github.com/WaleiChang/expense-tracker/ledger"
)

var catMessages = []string{
	"喵～今天也來記一筆，未來就有更多小零食可以買了 🐟",
	"存下來的小錢，可以變成未來的一大碗罐罐喔！",
	"不要小看每一筆 50 元，貓貓都在幫你默默加總～",
}

var dogMessages = []string{
	"汪！今天也有好好照顧荷包，真是乖孩子 🐾",
	"每記一筆支出，就離夢想又近一點點！",
	"汪汪提醒：偶爾也要獎勵自己一點點，但要量力而為喔。",
}

var momMessages = []string{
	"孩子，錢不是長在樹上的喔，記帳就是在照顧未來的自己 👩",
	"這週餐飲有點多喔～要不要考慮自己煮幾餐？",
	"看到你認真記帳，媽媽是真的很欣慰！",
}

// Picker selects messages from a seeded random source so the choice can be
// made deterministic in tests.
type Picker struct {
	r *rand.Rand
}

func NewPicker(src rand.Source) *Picker {
	return &Picker{r: rand.New(src)}
}

// Message picks a random message for the category and formats it with the
// amount just recorded. 餐飲 gets the mom pool, 娛樂 and 購物 get the cat
// pool, everything else gets the dog pool.
func (p *Picker) Message(category string, amount float64) string {
	var prefix string
	var pool []string

	switch category {
	case "餐飲":
		prefix = "👩"
		pool = momMessages
	case "娛樂", "購物":
		prefix = "🐱"
		pool = catMessages
	default:
		prefix = "🐶"
		pool = dogMessages
	}

	msg := pool[p.r.Intn(len(pool))]
	return prefix + " " + msg + "（剛剛那筆是 " + ledger.FormatNTD(amount) + " ）"
}
