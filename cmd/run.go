package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hance08/fixpay/cmd/ledger"
	"github.com/hance08/fixpay/internal/app"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/errhandler"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/navigator"
	"github.com/hance08/fixpay/internal/pos"
	"github.com/hance08/fixpay/internal/service"
	"github.com/hance08/fixpay/internal/ui"
	"github.com/hance08/fixpay/internal/ui/keypad"
	"github.com/hance08/fixpay/internal/ui/prompts"
	"github.com/hance08/fixpay/internal/ui/views"
	"github.com/pterm/pterm"
)

// step is what a screen asks the loop to do next.
type step struct {
	event  navigator.Event
	resync bool
	quit   bool
}

type interactiveRunner struct {
	app    *app.App
	state  *app.State
	window string
}

func (r *interactiveRunner) Run() error {
	r.state = app.NewState(r.app.Service)
	r.window = constants.WindowAll

	for {
		var (
			next step
			err  error
		)

		switch r.state.Nav.Current() {
		case model.ScreenWelcome:
			next, err = r.welcome()
		case model.ScreenSetup:
			next, err = r.setup()
		case model.ScreenPOS:
			next, err = r.pos()
		case model.ScreenLedger:
			next, err = r.ledger()
		case model.ScreenSettings:
			next, err = r.settings()
		}

		if err != nil {
			return err
		}
		if next.quit {
			return nil
		}

		if next.resync {
			r.state.Resync()
			continue
		}
		if next.event == navigator.EventFactoryReset {
			r.state.Reset()
			r.window = constants.WindowAll
			continue
		}
		if _, err := r.state.Go(next.event); err != nil {
			r.app.Log.Warn().Err(err).Msg("ignored navigation event")
		}
	}
}

func (r *interactiveRunner) welcome() (step, error) {
	ui.PrintL1Title("FixPay")

	choice, err := prompts.PromptWelcome()
	if errhandler.IsCancel(err) || choice == prompts.WelcomeQuit {
		return step{quit: true}, nil
	}
	if err != nil {
		return step{}, err
	}

	if _, err := r.app.Service.Auth.Login(); err != nil {
		return step{}, err
	}
	return step{event: navigator.EventLogin}, nil
}

func (r *interactiveRunner) setup() (step, error) {
	ui.PrintL1Title("Shop Setup")

	for {
		var guess *model.MerchantGuess

		method, err := prompts.PromptSetupMethod()
		if errhandler.IsCancel(err) {
			return step{quit: true}, nil
		}
		if err != nil {
			return step{}, err
		}

		if method == prompts.SetupScan {
			guess, err = r.scan()
			switch {
			case errhandler.IsCancel(err):
				pterm.Info.Println("Scan cancelled, enter the details manually.")
			case err != nil:
				errhandler.Inline(err)
			}
		}

		shop, upi, category, err := prompts.PromptMerchantDetails(guess)
		if errhandler.IsCancel(err) {
			continue
		}
		if err != nil {
			return step{}, err
		}

		if _, err := r.app.Service.Merchant.CompleteSetup(shop, upi, category); err != nil {
			errhandler.Inline(err)
			continue
		}

		pterm.Success.Printf("Welcome, %s!\n", shop)
		return step{event: navigator.EventSetupComplete}, nil
	}
}

// scan reads merchant details off a QR photo. Nothing found is reported as
// an error so the caller can fall back to manual entry.
func (r *interactiveRunner) scan() (*model.MerchantGuess, error) {
	path, err := prompts.PromptImagePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.ErrExtractionFailed(err)
	}

	// Ctrl+C stops the request instead of the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spinner, _ := pterm.DefaultSpinner.Start("Analyzing QR code... (Ctrl+C to enter manually)")
	guess, err := r.app.Extractor.Extract(ctx, data, http.DetectContentType(data))
	if spinner != nil {
		_ = spinner.Stop()
	}

	if err != nil {
		return nil, err
	}
	if guess == nil {
		return nil, apperror.ErrNotFoundInImage()
	}

	pterm.Success.Printf("Found %s\n", guess.UPIID)
	return guess, nil
}

func (r *interactiveRunner) pos() (step, error) {
	cfg := r.state.Config
	if cfg == nil {
		return r.missingConfig()
	}

	term := pos.NewTerminal(r.app.Service.Ledger, nil)
	term.SetCurrency(r.app.Service.Config.Defaults.Currency)
	dictation := pos.NewDictation(r.app.Recognizer, r.app.Log)

	m := keypad.New(term, dictation, *cfg, r.app.Service.Ledger.TodayTotal)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	dictation.Stop()
	if err != nil {
		return step{}, err
	}

	switch final.(keypad.Model).Exit() {
	case keypad.ExitLedger:
		return step{event: navigator.EventShowLedger}, nil
	case keypad.ExitSettings:
		return step{event: navigator.EventShowSettings}, nil
	case keypad.ExitLogout:
		if err := r.app.Service.Auth.Logout(); err != nil {
			return step{}, err
		}
		return step{event: navigator.EventLogout}, nil
	default:
		return step{quit: true}, nil
	}
}

// missingConfig surfaces a storage failure, or re-resolves the screen when
// the config is simply absent so the guard can send the user to Setup.
func (r *interactiveRunner) missingConfig() (step, error) {
	if _, err := r.app.Service.Merchant.Load(); err != nil {
		return step{}, err
	}
	return step{resync: true}, nil
}

func (r *interactiveRunner) ledger() (step, error) {
	svc := r.app.Service

	for {
		txns := svc.Ledger.Filter(r.window)
		if err := views.RenderLedger(txns, views.LedgerSummary{
			WindowLabel: prompts.WindowLabel(r.window),
			Total:       service.TotalOf(txns),
			Count:       len(txns),
		}, time.Now()); err != nil {
			return step{}, err
		}

		action, err := prompts.PromptLedgerMenu()
		if errhandler.IsCancel(err) || action == prompts.LedgerBack {
			return step{event: navigator.EventBack}, nil
		}
		if err != nil {
			return step{}, err
		}

		if err := r.ledgerAction(action, txns); err != nil {
			if errhandler.IsCancel(err) {
				continue
			}
			errhandler.Inline(err)
		}
	}
}

func (r *interactiveRunner) ledgerAction(action string, shown []model.Transaction) error {
	svc := r.app.Service

	switch action {
	case prompts.LedgerFilter:
		window, err := prompts.PromptWindow(constants.Windows, r.window)
		if err != nil {
			return err
		}
		r.window = window

	case prompts.LedgerExport:
		path, err := prompts.PromptFilePath("Save CSV as:", svc.Ledger.ExportFileName())
		if err != nil {
			return err
		}
		return ledger.ExportTo(r.app, path)

	case prompts.LedgerImport:
		path, err := prompts.PromptFilePath("CSV file to import:", "")
		if err != nil {
			return err
		}
		return ledger.ImportFrom(r.app, path)

	case prompts.LedgerDelete:
		id, err := prompts.PromptPickTransaction(shown)
		if err != nil || id == "" {
			return err
		}
		tx, _ := svc.Ledger.Find(id)
		views.RenderDeletePreview(tx, time.Now())

		pending := svc.Ledger.RequestDelete(id)
		ok, err := prompts.PromptConfirm(pending.Description, false)
		if err != nil || !ok {
			_ = pending.Cancel()
			return err
		}
		if err := pending.Confirm(); err != nil {
			return err
		}
		pterm.Success.Printf("Transaction %s deleted\n", id)
	}
	return nil
}

func (r *interactiveRunner) settings() (step, error) {
	if r.state.Config == nil {
		return r.missingConfig()
	}
	draft := service.NewSettingsDraft(*r.state.Config)

	for {
		ui.PrintL2Title("%s  (%s)", draft.Current().ShopName, draft.Current().UPIID)

		action, err := prompts.PromptSettingsMenu()
		if errhandler.IsCancel(err) || action == prompts.SettingsDiscard {
			return step{event: navigator.EventBack}, nil
		}
		if err != nil {
			return step{}, err
		}

		next, done, err := r.settingsAction(action, draft)
		if err != nil {
			if !errhandler.IsCancel(err) {
				errhandler.Inline(err)
			}
			continue
		}
		if done {
			return next, nil
		}
	}
}

func (r *interactiveRunner) settingsAction(action string, draft *service.SettingsDraft) (step, bool, error) {
	svc := r.app.Service

	switch action {
	case prompts.SettingsProfile:
		shop, upi, err := prompts.PromptProfile(draft.Current())
		if err != nil {
			return step{}, false, err
		}
		draft.SetProfile(shop, upi)

	case prompts.SettingsQuickAmounts:
		input, err := prompts.PromptQuickAmounts(draft.Current().QuickAmounts)
		if err != nil {
			return step{}, false, err
		}
		if err := draft.SetQuickAmounts(input); err != nil {
			return step{}, false, err
		}

	case prompts.SettingsAddItem:
		name, price, err := prompts.PromptNewItem()
		if err != nil {
			return step{}, false, err
		}
		if _, err := draft.AddItem(name, price); err != nil {
			return step{}, false, err
		}

	case prompts.SettingsRemoveItem:
		id, err := prompts.PromptRemoveItem(draft.Current().Catalog)
		if err != nil {
			return step{}, false, err
		}
		draft.RemoveItem(id)

	case prompts.SettingsSave:
		cfg, err := draft.Build()
		if err != nil {
			return step{}, false, err
		}
		if err := svc.Merchant.Save(cfg); err != nil {
			return step{}, false, err
		}
		pterm.Success.Println("Settings saved")
		return step{event: navigator.EventSettingsSaved}, true, nil

	case prompts.SettingsReset:
		pending := svc.RequestFactoryReset()
		pterm.Warning.Println("This will delete your shop settings, login and every transaction.")
		ok, err := prompts.PromptConfirm(pending.Description, false)
		if err != nil || !ok {
			_ = pending.Cancel()
			return step{}, false, err
		}
		if err := pending.Confirm(); err != nil {
			return step{}, false, err
		}
		pterm.Success.Println("All data deleted")
		return step{event: navigator.EventFactoryReset}, true, nil
	}

	return step{}, false, nil
}
