package demo

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/vango-dev/htgo/el"
	"github.com/vango-dev/htgo/pkg/node"
)

// Row is one generated customer.
type Row struct {
	ID      int
	Name    string
	Email   string
	Company string
	City    string
	Balance float64
}

// FakeRows generates n customers. The same seed always yields the same rows.
func FakeRows(n int, seed int64) []Row {
	f := gofakeit.New(uint64(seed))
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			ID:      i + 1,
			Name:    f.Name(),
			Email:   f.Email(),
			Company: f.Company(),
			City:    f.City(),
			Balance: f.Price(-500, 5000),
		}
	}
	return rows
}

// Table renders rows as an HTML table.
func Table(rows []Row) node.Node {
	return el.Table.Children(
		el.Thead.Children(el.Tr.Children(
			el.Th.Children("#"),
			el.Th.Children("Name"),
			el.Th.Children("Email"),
			el.Th.Children("Company"),
			el.Th.Children("City"),
			el.Th.With(".num").Children("Balance"),
		)),
		el.Tbody.Children(node.For(rows, tableRow)),
	)
}

func tableRow(r Row) node.Node {
	return el.Tr.With(el.ClassIf(r.Balance < 0, "overdrawn")).Children(
		el.Td.Children(r.ID),
		el.Td.Children(r.Name),
		el.Td.Children(el.A.With(el.Href("mailto:"+r.Email)).Children(r.Email)),
		el.Td.Children(r.Company),
		el.Td.Children(r.City),
		el.Td.With(".num").Children(strconv.FormatFloat(r.Balance, 'f', 2, 64)),
	)
}
