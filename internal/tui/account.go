package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/auth"
)

type accountModel struct {
	svc    *auth.Service
	width  int
	height int

	user  *auth.User
	users []auth.User

	formActive  bool
	registering bool
	form        *huh.Form

	name     *string
	email    *string
	password *string
	invite   *string
}

func newAccountModel(svc *auth.Service) accountModel {
	n, e, p, i := "", "", "", ""
	return accountModel{
		svc:      svc,
		name:     &n,
		email:    &e,
		password: &p,
		invite:   &i,
	}
}

func (a *accountModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

type accountDataMsg struct {
	user  *auth.User
	users []auth.User
}

func (a accountModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return accountDataMsg{
			user:  a.svc.CurrentUser(),
			users: a.svc.Users(),
		}
	}
}

func (a accountModel) update(msg tea.Msg) (accountModel, tea.Cmd) {
	if a.formActive && a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case accountDataMsg:
		a.user = msg.user
		a.users = msg.users
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			if a.user == nil {
				return a.showForm(true)
			}
		case key.Matches(msg, keys.Enter):
			if a.user == nil {
				return a.showForm(false)
			}
		case msg.String() == "l":
			if a.user != nil {
				a.svc.Logout()
				a.user = nil
				return a, statusCmd("Cikis yapildi.")
			}
		}
	}
	return a, nil
}

func (a accountModel) showForm(register bool) (accountModel, tea.Cmd) {
	*a.name, *a.email, *a.password, *a.invite = "", "", "", ""
	a.registering = register

	if register {
		a.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Ad Soyad").Value(a.name),
				huh.NewInput().Title("E-posta").Value(a.email),
				huh.NewInput().Title("Sifre").EchoMode(huh.EchoModePassword).Value(a.password),
				huh.NewInput().Title("Davet kodu (istege bagli)").Value(a.invite),
			).Title("Kayit Ol"),
		).WithShowHelp(true).WithShowErrors(true)
	} else {
		a.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("E-posta").Value(a.email),
				huh.NewInput().Title("Sifre").EchoMode(huh.EchoModePassword).Value(a.password),
			).Title("Giris Yap"),
		).WithShowHelp(true).WithShowErrors(true)
	}

	a.formActive = true
	return a, a.form.Init()
}

func (a accountModel) updateForm(msg tea.Msg) (accountModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			a.formActive = false
			a.form = nil
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.formActive = false
		return a.submit()
	}

	return a, cmd
}

func (a accountModel) submit() (accountModel, tea.Cmd) {
	var (
		user *auth.User
		err  error
	)
	if a.registering {
		user, err = a.svc.Register(*a.name, *a.email, *a.password, *a.invite)
	} else {
		user, err = a.svc.Login(*a.email, *a.password)
	}
	if err != nil {
		return a, errorCmd("%s", authErrorText(err))
	}

	a.user = user
	a.users = a.svc.Users()
	return a, statusCmd("Hos geldin, " + user.Name + "!")
}

func authErrorText(err error) string {
	switch err {
	case auth.ErrNameTooShort:
		return "Ad en az 2 karakter olmali."
	case auth.ErrInvalidEmail:
		return "Gecerli bir e-posta adresi gir."
	case auth.ErrPasswordTooShort:
		return "Sifre en az 6 karakter olmali."
	case auth.ErrEmailTaken:
		return "Bu e-posta ile zaten bir hesap var."
	case auth.ErrLoginFailed:
		return "E-posta veya sifre hatali."
	default:
		return err.Error()
	}
}

func (a accountModel) view() string {
	w := a.width - 4

	if a.formActive && a.form != nil {
		title := titleStyle.Render("Hesap")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", a.form.View()),
		)
	}

	if a.user == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Hesap"),
			mutedStyle.Render("Giris yapilmadi."),
			"",
			"enter: giris yap    n: kayit ol",
		)
		return panelStyle.Width(w).Render(content)
	}

	role := "Uye"
	if a.user.Role == auth.RoleAdmin {
		role = "Kurucu"
	}

	var rows []string
	rows = append(rows,
		titleStyle.Render("Hesap"),
		highlightStyle.Render(a.user.Name)+"  "+accentStyle.Render(role),
		mutedStyle.Render(a.user.Email),
		mutedStyle.Render("Kayit: "+a.user.CreatedAt.Format("02.01.2006")),
		"",
	)

	if a.user.Role == auth.RoleAdmin {
		rows = append(rows, headerStyle.Render(fmt.Sprintf("Kayitli uyeler (%d)", len(a.users))))
		for _, u := range a.users {
			tag := ""
			if u.Role == auth.RoleAdmin {
				tag = warningStyle.Render("  kurucu")
			}
			rows = append(rows, normalItemStyle.Render("  "+u.Name+" <"+u.Email+">")+tag)
		}
		rows = append(rows, "")
	}

	rows = append(rows, mutedStyle.Render("l: cikis yap"))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
