package admin

import "net/url"

// Tab identifies one back-office screen. The active tab travels in the URL
// query so dashboard navigation survives reloads and is linkable.
type Tab string

const (
	TabOverview      Tab = "overview"
	TabCategories    Tab = "categories"
	TabProducts      Tab = "products"
	TabOrders        Tab = "orders"
	TabNotifications Tab = "notifications"
	TabCustomers     Tab = "customers"
	TabMessages      Tab = "messages"
	TabReports       Tab = "reports"
	TabSettings      Tab = "settings"
)

var validTabs = map[Tab]bool{
	TabOverview: true, TabCategories: true, TabProducts: true,
	TabOrders: true, TabNotifications: true, TabCustomers: true,
	TabMessages: true, TabReports: true, TabSettings: true,
}

// Nav is the dashboard navigation state carried in query parameters: the
// active tab plus the detail record being viewed, if any.
type Nav struct {
	Tab        Tab
	OrderID    string
	MessageID  string
	CustomerID string
}

// ParseNav resolves navigation state from query parameters. An unknown or
// missing tab falls back to the overview.
func ParseNav(params url.Values) Nav {
	tab := Tab(params.Get("tab"))
	if !validTabs[tab] {
		tab = TabOverview
	}
	return Nav{
		Tab:        tab,
		OrderID:    params.Get("order"),
		MessageID:  params.Get("message"),
		CustomerID: params.Get("customer"),
	}
}

// Values renders the state back into query parameters; ParseNav(n.Values())
// round-trips.
func (n Nav) Values() url.Values {
	params := url.Values{}
	params.Set("tab", string(n.Tab))
	if n.OrderID != "" {
		params.Set("order", n.OrderID)
	}
	if n.MessageID != "" {
		params.Set("message", n.MessageID)
	}
	if n.CustomerID != "" {
		params.Set("customer", n.CustomerID)
	}
	return params
}

// WithTab returns the state switched to tab with any open detail view
// closed.
func (n Nav) WithTab(tab Tab) Nav {
	if !validTabs[tab] {
		tab = TabOverview
	}
	return Nav{Tab: tab}
}
