package editor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mspro-labs/lunch-picker/internal/models"
	"mspro-labs/lunch-picker/internal/prompt"
	"mspro-labs/lunch-picker/internal/validation"
)

// Saver persists the full catalog.
type Saver interface {
	Save(records []models.Restaurant) error
}

// Add asks for a new restaurant, appends it to catalog and saves the catalog.
func Add(ctx context.Context, p *prompt.Prompter, catalog *models.Catalog, saver Saver) (models.Restaurant, error) {
	var r models.Restaurant
	var err error

	p.Println("\n================= 🍽️ 신규 맛집 추가 🍽️ =================")

	if r.Name, err = p.Text(ctx, "1. 식당 이름: ", "식당 이름은 필수 입력입니다."); err != nil {
		return r, err
	}
	if r.Category, err = p.Choose(ctx, "2. 카테고리를 선택하세요:", models.Categories); err != nil {
		return r, err
	}
	if r.Price, err = p.PositiveInt(ctx, "3. 가격 (숫자만 입력): ", "올바른 가격(양의 정수)을 숫자로 입력해 주세요."); err != nil {
		return r, err
	}

	spicy, err := p.YesNo(ctx, "4. 메뉴가 매운가요? (Y/N): ")
	if err != nil {
		return r, err
	}
	soup, err := p.YesNo(ctx, "5. 국물이 있나요? (Y/N): ")
	if err != nil {
		return r, err
	}
	r.IsSpicy, r.HasSoup = models.Flag(spicy), models.Flag(soup)

	if err := validation.Struct(r); err != nil {
		return r, err
	}

	catalog.Append(r)
	if err := saver.Save(catalog.Records()); err != nil {
		return r, fmt.Errorf("failed to save new restaurant: %w", err)
	}
	log.Info().Str("name", r.Name).Int("total", catalog.Len()).Msg("restaurant added")

	p.Printf("\n✨ %s 맛집이 성공적으로 추가 및 저장되었습니다! (총 %d개)\n", r.Name, catalog.Len())
	return r, nil
}
