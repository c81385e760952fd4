package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"mspro-labs/lunch-picker/internal/editor"
	"mspro-labs/lunch-picker/internal/models"
	"mspro-labs/lunch-picker/internal/prompt"
	"mspro-labs/lunch-picker/internal/recommender"
	"mspro-labs/lunch-picker/internal/store"
)

const banner = "================================================"

// App is one interactive session over a loaded catalog.
type App struct {
	prompter    *prompt.Prompter
	store       *store.Store
	catalog     *models.Catalog
	recommender *recommender.Recommender
}

// New loads the catalog through st and reports how it was obtained.
func New(p *prompt.Prompter, st *store.Store, budget int) (*App, error) {
	res, err := st.Load()
	switch res.Status {
	case store.RecoveredFromMissing:
		p.Printf("데이터 파일(%s)이 없습니다. 초기 데이터를 생성합니다.\n", st.Path())
	case store.RecoveredFromCorrupt:
		log.Warn().Err(res.Cause).Str("path", st.Path()).Msg("catalog unreadable, using seed data")
		p.Println("데이터 로드 중 오류가 발생했습니다. 초기 데이터를 사용합니다.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write seed catalog: %w", err)
	}

	catalog := models.NewCatalog(res.Records)
	p.Printf("데이터 파일(%s) 로드 완료! (총 %d개 맛집)\n", st.Path(), catalog.Len())

	return &App{
		prompter:    p,
		store:       st,
		catalog:     catalog,
		recommender: recommender.New(p, budget),
	}, nil
}

// Catalog exposes the session catalog.
func (a *App) Catalog() *models.Catalog {
	return a.catalog
}

// Recommender exposes the recommender so callers can swap its picker.
func (a *App) Recommender() *recommender.Recommender {
	return a.recommender
}

// Run shows the main menu until the user exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	p := a.prompter
	for {
		p.Println("\n" + banner)
		p.Println("[ SMART LUNCH SELECTOR ]")
		p.Println(banner)
		p.Println("1. 메뉴 추천받기")
		p.Println("2. 맛집 추가하기")
		p.Println("3. 종료")
		p.Println(banner)

		choice, err := p.ReadLine(ctx, "[입력] 1-3번중 메뉴를 선택하세요 : ")
		if isTermination(err) {
			p.Println("\n프로그램을 강제 종료합니다.")
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to read menu choice")
			p.Println("알 수 없는 오류가 발생했습니다. 다시 시도해 주세요.")
			continue
		}

		var action func(context.Context) error
		switch strings.TrimSpace(choice) {
		case "1":
			action = a.recommend
		case "2":
			action = a.add
		case "3":
			p.Println("프로그램을 종료합니다.")
			return nil
		default:
			p.Println("1, 2, 3 중 하나를 입력해 주세요.")
			continue
		}

		err = a.safely(ctx, action)
		if isTermination(err) {
			p.Println("\n프로그램을 강제 종료합니다.")
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("action failed")
			p.Println("알 수 없는 오류가 발생했습니다. 다시 시도해 주세요.")
		}
	}
}

func (a *App) recommend(ctx context.Context) error {
	_, err := a.recommender.Run(ctx, a.catalog)
	return err
}

func (a *App) add(ctx context.Context) error {
	_, err := editor.Add(ctx, a.prompter, a.catalog, a.store)
	return err
}

// safely runs action, turning a panic into an error so the menu survives it.
func (a *App) safely(ctx context.Context, action func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return action(ctx)
}

func isTermination(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}
