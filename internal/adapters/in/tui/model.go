package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/draft"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenProducts screen = iota
	screenOrder
	screenStatus
)

var screenTitles = []string{"Products", "Place Order", "Order Status"}

const (
	fieldName = iota
	fieldEmail
	firstItemField
)

type catalogLoaded struct {
	err error
}

type formCatalogLoaded struct {
	err error
}

type orderSubmitted struct {
	orderID string
	err     error
}

type statusLoaded struct {
	err error
}

// Model is the storefront terminal UI. It renders three screens backed by
// the views; network calls run as tea.Cmd and report back as messages.
type Model struct {
	ctx      context.Context
	products *view.CatalogView
	form     *view.OrderFormView
	status   *view.OrderStatusView

	screen  screen
	focus   int
	choice  []int
	qtyText []string
	orderID string
}

func NewModel(ctx context.Context, products *view.CatalogView, form *view.OrderFormView, status *view.OrderStatusView) Model {
	return Model{
		ctx:      ctx,
		products: products,
		form:     form,
		status:   status,
		choice:   []int{-1},
		qtyText:  []string{"1"},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalogCmd(m.ctx, m.products), loadFormCatalogCmd(m.ctx, m.form))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.closeViews()
			return m, tea.Quit
		case "tab":
			m.screen = (m.screen + 1) % screen(len(screenTitles))
			return m, nil
		case "shift+tab":
			m.screen = (m.screen + screen(len(screenTitles)) - 1) % screen(len(screenTitles))
			return m, nil
		}
		switch m.screen {
		case screenProducts:
			return m.updateProducts(msg)
		case screenOrder:
			return m.updateOrder(msg)
		case screenStatus:
			return m.updateStatus(msg)
		}
	case orderSubmitted:
		if msg.err == nil {
			m.resetDraftInputs()
		}
	}
	return m, nil
}

func (m Model) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.closeViews()
		return m, tea.Quit
	case "r":
		if m.products.State().Phase == view.Loading {
			return m, nil
		}
		return m, loadCatalogCmd(m.ctx, m.products)
	}
	return m, nil
}

func (m Model) updateOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.State().Phase == view.Success {
		if msg.String() == "esc" {
			m.form.PlaceAnother()
			m.resetDraftInputs()
		}
		return m, nil
	}

	switch msg.String() {
	case "up":
		if m.focus > 0 {
			m.focus--
		}
	case "down":
		if m.focus < m.fieldCount()-1 {
			m.focus++
		}
	case "left":
		m.cycleProduct(-1)
	case "right":
		m.cycleProduct(1)
	case "ctrl+a":
		m.form.AddItem()
		m.choice = append(m.choice, -1)
		m.qtyText = append(m.qtyText, "1")
	case "ctrl+d":
		row, ok := m.focusedRow()
		if !ok || !m.form.CanRemove() {
			return m, nil
		}
		if err := m.form.RemoveItem(row); err != nil {
			return m, nil
		}
		m.choice = append(m.choice[:row], m.choice[row+1:]...)
		m.qtyText = append(m.qtyText[:row], m.qtyText[row+1:]...)
		if m.focus >= m.fieldCount() {
			m.focus = m.fieldCount() - 1
		}
	case "ctrl+r":
		if m.form.CatalogState().Phase == view.Loading {
			return m, nil
		}
		return m, loadFormCatalogCmd(m.ctx, m.form)
	case "enter":
		if m.form.State().Phase == view.Loading {
			return m, nil
		}
		return m, submitOrderCmd(m.ctx, m.form)
	default:
		m.editText(msg)
	}
	return m, nil
}

func (m Model) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.status.State().Phase == view.Loading || strings.TrimSpace(m.orderID) == "" {
			return m, nil
		}
		return m, lookupStatusCmd(m.ctx, m.status, m.orderID)
	default:
		m.orderID = edit(m.orderID, msg)
	}
	return m, nil
}

func (m *Model) editText(msg tea.KeyMsg) {
	switch {
	case m.focus == fieldName || m.focus == fieldEmail:
		name, email := m.form.Customer()
		if m.focus == fieldName {
			name = edit(name, msg)
		} else {
			email = edit(email, msg)
		}
		m.form.SetCustomer(name, email)
	case (m.focus-firstItemField)%2 == 1:
		row, _ := m.focusedRow()
		m.qtyText[row] = edit(m.qtyText[row], msg)
		_ = m.form.UpdateItem(row, draft.FieldQuantity, m.qtyText[row])
	}
}

func (m *Model) cycleProduct(step int) {
	row, ok := m.focusedRow()
	if !ok || (m.focus-firstItemField)%2 != 0 {
		return
	}
	c := m.form.Catalog()
	if c.Len() == 0 {
		return
	}

	// -1 is the empty choice.
	n := c.Len() + 1
	m.choice[row] = (m.choice[row]+1+step+n)%n - 1

	productID := ""
	if m.choice[row] >= 0 {
		productID = c.Products()[m.choice[row]].ID()
	}
	_ = m.form.UpdateItem(row, draft.FieldProduct, productID)
}

func (m *Model) focusedRow() (int, bool) {
	if m.focus < firstItemField {
		return 0, false
	}
	row := (m.focus - firstItemField) / 2
	return row, row < len(m.choice)
}

func (m *Model) fieldCount() int {
	return firstItemField + 2*len(m.choice)
}

func (m *Model) resetDraftInputs() {
	m.focus = fieldName
	m.choice = []int{-1}
	m.qtyText = []string{"1"}
}

func (m Model) closeViews() {
	m.products.Close()
	m.form.Close()
	m.status.Close()
}

func edit(s string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace:
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1])
	case tea.KeySpace:
		return s + " "
	case tea.KeyRunes:
		return s + string(msg.Runes)
	default:
		return s
	}
}

func (m Model) View() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "Bakery")
	for i, title := range screenTitles {
		if screen(i) == m.screen {
			fmt.Fprintf(b, " [%s]", title)
		} else {
			fmt.Fprintf(b, "  %s ", title)
		}
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b)

	switch m.screen {
	case screenProducts:
		m.viewProducts(b)
	case screenOrder:
		m.viewOrder(b)
	case screenStatus:
		m.viewStatus(b)
	}
	return b.String()
}

func (m Model) viewProducts(b *strings.Builder) {
	s := m.products.State()
	switch s.Phase {
	case view.Idle, view.Loading:
		fmt.Fprintln(b, "Loading products...")
	case view.Failure:
		fmt.Fprintln(b, m.products.Message())
	case view.Success:
		for _, p := range s.Data.Products() {
			fmt.Fprintf(b, "%-24s %-10s $%s\n", p.Name(), p.Category(), p.Price())
			if p.Description() != "" {
				fmt.Fprintf(b, "    %s\n", p.Description())
			}
		}
	}
	fmt.Fprintln(b, "\nControls: tab switch screen, r reload, q or ctrl+c quit")
}

func (m Model) viewOrder(b *strings.Builder) {
	s := m.form.State()
	if s.Phase == view.Success {
		fmt.Fprintln(b, m.form.Message())
		fmt.Fprintf(b, "Order ID: %s\n", s.Data)
		fmt.Fprintln(b, "You can check your order status using this ID.")
		fmt.Fprintln(b, "\nControls: esc place another order, tab switch screen, ctrl+c quit")
		return
	}
	if m.form.CatalogState().Phase == view.Loading {
		fmt.Fprintln(b, "Loading...")
		return
	}

	name, email := m.form.Customer()
	fmt.Fprintf(b, "%s Name:  %s\n", m.marker(fieldName), name)
	fmt.Fprintf(b, "%s Email: %s\n", m.marker(fieldEmail), email)
	fmt.Fprintln(b, "\nOrder Items")

	c := m.form.Catalog()
	for row, choice := range m.choice {
		label := "Select a product"
		if choice >= 0 && choice < c.Len() {
			label = c.Products()[choice].Label()
		}
		field := firstItemField + 2*row
		fmt.Fprintf(b, "%s Product: < %s >\n", m.marker(field), label)
		fmt.Fprintf(b, "%s Qty:     %s\n", m.marker(field+1), m.qtyText[row])
	}

	switch s.Phase {
	case view.Loading:
		fmt.Fprintln(b, "\nPlacing order...")
	case view.Failure:
		fmt.Fprintf(b, "\n%s\n", m.form.Message())
	}
	fmt.Fprintln(b, "\nControls: up/down field, left/right product, ctrl+a add item, ctrl+d remove item, enter place order")
}

func (m Model) viewStatus(b *strings.Builder) {
	fmt.Fprintf(b, "Order ID: %s\n\n", m.orderID)

	s := m.status.State()
	switch s.Phase {
	case view.Loading:
		fmt.Fprintln(b, "Checking...")
	case view.Failure:
		fmt.Fprintln(b, m.status.Message())
	case view.Success:
		renderRecord(b, s.Data)
	}
	fmt.Fprintln(b, "\nControls: type an order id, enter check status, tab switch screen, ctrl+c quit")
}

var statusStyles = map[string]lipgloss.Style{
	order.Pending.Class():    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	order.Processing.Class(): lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	order.Completed.Class():  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	order.Failed.Class():     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// StatusStyle picks the style for a status by its display class. Statuses
// without a class render unstyled.
func StatusStyle(s order.Status) lipgloss.Style {
	if style, ok := statusStyles[s.Class()]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderRecord writes an order snapshot the way the status screen shows it.
func RenderRecord(r order.Record) string {
	b := &strings.Builder{}
	renderRecord(b, r)
	return b.String()
}

func renderRecord(b *strings.Builder, r order.Record) {
	fmt.Fprintf(b, "Order #%s\n", r.OrderID)
	fmt.Fprintf(b, "Customer: %s\n", r.CustomerName)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(b, "Date: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(b, "Status: %s\n", StatusStyle(r.Status).Render(strings.ToUpper(r.Status.String())))
	for _, item := range r.Items {
		fmt.Fprintf(b, "  %-24s $%-8s x%-3d $%s\n", item.Name, item.Price, item.Quantity, item.Amount())
	}
	fmt.Fprintf(b, "Total: $%s\n", r.TotalAmount)
}

func (m Model) marker(field int) string {
	if field == m.focus {
		return ">"
	}
	return " "
}

func loadCatalogCmd(ctx context.Context, v *view.CatalogView) tea.Cmd {
	return func() tea.Msg {
		return catalogLoaded{err: v.Load(ctx)}
	}
}

func loadFormCatalogCmd(ctx context.Context, v *view.OrderFormView) tea.Cmd {
	return func() tea.Msg {
		return formCatalogLoaded{err: v.LoadCatalog(ctx)}
	}
}

func submitOrderCmd(ctx context.Context, v *view.OrderFormView) tea.Cmd {
	return func() tea.Msg {
		orderID, err := v.Submit(ctx)
		if errors.Is(err, view.ErrBusy) {
			return nil
		}
		return orderSubmitted{orderID: orderID, err: err}
	}
}

func lookupStatusCmd(ctx context.Context, v *view.OrderStatusView, orderID string) tea.Cmd {
	return func() tea.Msg {
		_, err := v.Lookup(ctx, orderID)
		return statusLoaded{err: err}
	}
}
