package recommender

import (
	"context"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"mspro-labs/lunch-picker/internal/filter"
	"mspro-labs/lunch-picker/internal/models"
	"mspro-labs/lunch-picker/internal/money"
	"mspro-labs/lunch-picker/internal/prompt"
)

const divider = "................................................"

// Picker returns an index in [0, n).
type Picker func(n int) int

// Recommender filters the catalog and suggests one random candidate.
type Recommender struct {
	prompter *prompt.Prompter
	budget   int
	pick     Picker
}

// New returns a Recommender that picks uniformly at random.
func New(p *prompt.Prompter, budget int) *Recommender {
	return &Recommender{prompter: p, budget: budget, pick: rand.Intn}
}

// WithPicker replaces the random source, mostly for tests.
func (r *Recommender) WithPicker(pick Picker) *Recommender {
	r.pick = pick
	return r
}

// Run performs one recommendation round. It returns the suggested record,
// or nil when nothing matched.
func (r *Recommender) Run(ctx context.Context, catalog *models.Catalog) (*models.Restaurant, error) {
	p := r.prompter

	p.Println("\n" + divider)
	p.Println("[검색 중...] 조건 필터링 시작!")
	candidates, err := filter.Filter(ctx, p, catalog.Records(), r.budget)
	if err != nil {
		return nil, err
	}
	p.Printf("[검색 중...] 조건 필터링 완료! (후보 %d개)\n", len(candidates))
	p.Println(divider)

	if len(candidates) == 0 {
		p.Println("\n!!! 조건에 맞는 식당이 없습니다. !!!")
		p.Println("조건을 다시 설정하거나 맛집 추가 메뉴를 이용해 주세요.")
		return nil, nil
	}

	choice := candidates[r.pick(len(candidates))]
	log.Debug().Str("name", choice.Name).Int("candidates", len(candidates)).Msg("picked restaurant")

	p.Println("\n★ 오늘의 추천 메뉴 ★")
	p.Printf("식당명: [ %s ]\n", choice.Name)
	p.Printf("가격: %s원\n", money.Format(choice.Price))
	p.Printf("특징: %s\n", strings.Join(Tags(choice, r.budget), " "))

	liked, err := p.YesNo(ctx, "마음에 드시나요? (Y/N): ")
	if err != nil {
		return &choice, err
	}
	if liked {
		p.Println("즐거운 점심시간 되세요! 초기 화면으로 돌아갑니다.")
	} else {
		p.Println("아쉽네요. 다음엔 더 좋은 메뉴를 추천해 드릴게요.")
	}
	return &choice, nil
}

// Tags derives the hashtags shown with a recommendation.
func Tags(r models.Restaurant, budget int) []string {
	tags := []string{"#" + r.Category}
	if r.Price <= budget {
		tags = append(tags, "#가성비")
	} else {
		tags = append(tags, "#플렉스")
	}
	if r.Soup(false) {
		tags = append(tags, "#국물")
	}
	if r.Spicy(false) {
		tags = append(tags, "#매콤")
	}
	return tags
}
