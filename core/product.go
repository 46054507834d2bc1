package core

import "strings"

// Product 是目录中的一条商品记录，加载后只读。
// ID 在引擎内部统一为 canonical 形式（trim + 小写），由 CanonicalID 产出。
type Product struct {
	ID         string
	Title      string
	Categories []string // 保留原始大小写，比较时不区分大小写
	Price      float64  // 非负
}

// CanonicalID 规范化商品/用户 ID：去首尾空白并转小写。
// 目录、事件、查询三侧都走同一规则，保证 key 对齐。
func CanonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// HasCategory 判断商品是否属于给定类目集合（不区分大小写）。
func (p *Product) HasCategory(cats map[string]struct{}) bool {
	if p == nil || len(cats) == 0 {
		return false
	}
	for _, c := range p.Categories {
		if _, ok := cats[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}

// Catalog 是商品快照：按 canonical ID 索引，保留首次出现顺序。
// 构建后只读；重建模型时整体替换。
type Catalog struct {
	products map[string]*Product
	order    []string
}

// NewCatalog 从商品列表构建快照。ID 规范化后去重（后出现的覆盖先出现的值，
// 顺序以首次出现为准）；空 ID 的记录跳过。
func NewCatalog(products []*Product) *Catalog {
	c := &Catalog{
		products: make(map[string]*Product, len(products)),
		order:    make([]string, 0, len(products)),
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		id := CanonicalID(p.ID)
		if id == "" {
			continue
		}
		if _, ok := c.products[id]; !ok {
			c.order = append(c.order, id)
		}
		cp := *p
		cp.ID = id
		c.products[id] = &cp
	}
	return c
}

// Get 返回商品记录；入参会先做 canonical 处理。
func (c *Catalog) Get(id string) (*Product, bool) {
	p, ok := c.products[CanonicalID(id)]
	return p, ok
}

// Has 判断商品是否存在。
func (c *Catalog) Has(id string) bool {
	_, ok := c.products[CanonicalID(id)]
	return ok
}

// IDs 按首次出现顺序返回全部商品 ID。
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len 返回商品数。
func (c *Catalog) Len() int { return len(c.order) }
