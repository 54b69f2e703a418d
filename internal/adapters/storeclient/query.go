package storeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Query - запрос к одной таблице. Методы возвращают тот же *Query, чтобы строить цепочкой.
type Query struct {
	client *Client
	table  string
	method string
	params url.Values
	body   interface{}
	prefer []string
	single bool
}

func newQuery(c *Client, table string) *Query {
	return &Query{
		client: c,
		table:  table,
		method: http.MethodGet,
		params: url.Values{},
	}
}

// Select задает список колонок. Для записи (Insert/Update/Delete) это колонки,
// которые хранилище вернет в ответе.
func (q *Query) Select(columns string) *Query {
	if columns == "" {
		columns = "*"
	}
	q.params.Set("select", columns)
	if q.method != http.MethodGet {
		q.returnRepresentation()
	}
	return q
}

func (q *Query) Insert(rows interface{}) *Query {
	q.method = http.MethodPost
	q.body = rows
	q.returnRepresentation()
	return q
}

func (q *Query) Update(values interface{}) *Query {
	q.method = http.MethodPatch
	q.body = values
	q.returnRepresentation()
	return q
}

func (q *Query) Delete() *Query {
	q.method = http.MethodDelete
	return q
}

func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

// In - column in (v1, v2, ...). Значения всегда берутся в кавычки.
func (q *Query) In(column string, values []string) *Query {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quoteValue(v)
	}
	q.params.Add(column, "in.("+strings.Join(quoted, ",")+")")
	return q
}

func (q *Query) Gte(column string, value float64) *Query {
	q.params.Add(column, "gte."+formatNumber(value))
	return q
}

func (q *Query) Lte(column string, value float64) *Query {
	q.params.Add(column, "lte."+formatNumber(value))
	return q
}

// ILike - сравнение по шаблону без учета регистра, "*" означает любую подстроку.
func (q *Query) ILike(column, pattern string) *Query {
	q.params.Add(column, "ilike."+pattern)
	return q
}

// Or объединяет условия вида "column.op.value" через OR.
func (q *Query) Or(conditions ...string) *Query {
	q.params.Add("or", "("+strings.Join(conditions, ",")+")")
	return q
}

func (q *Query) Order(column string, ascending bool) *Query {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	q.params.Add("order", column+"."+direction)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Single ожидает ровно одну строку. Если строк нет, хранилище отвечает ошибкой PGRST116.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Execute отправляет запрос и декодирует ответ в dest.
func (q *Query) Execute(ctx context.Context, dest interface{}) error {
	return q.client.execute(ctx, q, dest)
}

// URL возвращает путь с параметрами, удобно для логов.
func (q *Query) URL() string {
	u := restPath + q.table
	if encoded := q.params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func (q *Query) returnRepresentation() {
	for _, p := range q.prefer {
		if p == "return=representation" {
			return
		}
	}
	q.prefer = append(q.prefer, "return=representation")
}

func (q *Query) headers() http.Header {
	h := http.Header{}
	if q.single {
		h.Set("Accept", "application/vnd.pgrst.object+json")
	}
	if len(q.prefer) > 0 {
		h.Set("Prefer", strings.Join(q.prefer, ","))
	}
	return h
}

// Condition собирает условие для Or: Condition("title", "ilike", "*x*") -> title.ilike."*x*".
func Condition(column, operator, value string) string {
	return fmt.Sprintf("%s.%s.%s", column, operator, quoteValue(value))
}

// quoteValue берет значение в двойные кавычки, чтобы запятые и скобки не ломали разбор.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
