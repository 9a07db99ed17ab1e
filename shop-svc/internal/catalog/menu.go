package catalog

import (
	"tiedan-noodle/shop-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func item(id, name, description string, price int64, category domain.Category, image string, signature bool) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.NewFromInt(price),
		Category:    category,
		Image:       image,
		IsSignature: signature,
		Available:   true,
	}
}

var menuItems = []domain.MenuItem{
	item("noodle-1", "铁蛋鸡汤刀削面", "精选老母鸡熬制高汤，配以手工刀削面，汤鲜面劲道", 28, domain.CategoryNoodles, "/image/menu/mian-1.jpg", true),
	item("noodle-2", "铁蛋干拌刀削面", "手工刀削面配特制干拌酱料，香浓入味，口感劲道", 30, domain.CategoryNoodles, "/image/menu/mian-2.jpg", true),
	item("noodle-3", "炸酱面", "传统北方炸酱面，肉酱香浓，唇齿留香", 29, domain.CategoryNoodles, "/image/menu/main-3.jpg", false),
	item("noodle-4", "油泼面", "陕西特色油泼面，热油激发葱蒜辣椒香气，香辣过瘾", 32, domain.CategoryNoodles, "/image/menu/mian-4.jpg", false),
	item("noodle-5", "西红柿鸡蛋刀削面", "新鲜西红柿与鸡蛋完美融合，酸甜开胃，营养丰富", 28, domain.CategoryNoodles, "/image/menu/mian-5.jpg", false),
	item("noodle-6", "剁椒刀削面", "湖南剁椒配刀削面，香辣鲜爽，辣而不燥", 35, domain.CategoryNoodles, "/image/menu/mian-6.jpg", false),
	item("noodle-7", "二合一刀削面", "任选两种浇头组合，双重口味一次满足，丰富多样", 35, domain.CategoryNoodles, "/image/menu/mian-7.jpg", false),
	item("noodle-8", "三合一刀削面", "任选三种浇头组合，多重风味层次丰富，超值享受", 35, domain.CategoryNoodles, "/image/menu/mian-8.jpg", false),
	item("noodle-9", "四合一刀削面", "任选四种浇头组合，极致丰盛，满足你的味蕾探索", 35, domain.CategoryNoodles, "/image/menu/mian-9.jpg", false),

	item("side-1", "凉拌黄瓜", "清爽开胃，酸甜可口", 8, domain.CategorySides, "/image/menu/cai-1.jpg", false),
	item("side-2", "老醋花生", "山西老陈醋调制，香脆可口", 10, domain.CategorySides, "/image/menu/cai-2.jpg", false),
	item("side-3", "拍黄瓜", "蒜香浓郁，清脆爽口", 8, domain.CategorySides, "/image/menu/cai-3.jpg", false),
	item("side-4", "凉拌木耳", "黑木耳配特制调料，营养健康", 12, domain.CategorySides, "/image/menu/cai-4.jpg", false),
	item("side-5", "麻辣豆干", "香辣入味，越嚼越香", 10, domain.CategorySides, "/image/menu/cai-5.jpg", false),
	item("side-6", "卤鸡蛋", "秘制卤汁，入味十足", 5, domain.CategorySides, "/image/menu/cai-6.jpg", false),
	item("side-7", "虎皮青椒", "青椒煎至虎皮状，配特制酱汁", 12, domain.CategorySides, "/image/menu/cai-7.jpg", false),

	item("drink-1", "酸梅汤", "传统配方，生津止渴", 8, domain.CategoryDrinks, "/image/menu/yin-1.jpg", false),
	item("drink-2", "豆浆", "现磨豆浆，营养健康", 6, domain.CategoryDrinks, "/image/menu/yin-2.jpg", false),
	item("drink-3", "冰糖雪梨", "润肺止咳，清甜可口", 10, domain.CategoryDrinks, "/image/menu/yin-3.jpg", false),
	item("drink-4", "可乐", "经典碳酸饮料", 5, domain.CategoryDrinks, "/image/menu/yin-4.jpg", false),
	item("drink-5", "雪碧", "清爽柠檬味", 5, domain.CategoryDrinks, "/image/menu/yin-5.jpg", false),
	item("drink-6", "矿泉水", "纯净水", 3, domain.CategoryDrinks, "/image/menu/yin-6.jpg", false),
}

var categories = []domain.CategoryInfo{
	{ID: domain.CategoryNoodles, Name: "刀削面系列", Description: "精选老母鸡熬制高汤，手工刀削面"},
	{ID: domain.CategorySides, Name: "小菜", Description: "精选凉菜小食，开胃爽口"},
	{ID: domain.CategoryDrinks, Name: "饮品", Description: "各式饮品，解渴消暑"},
}

// Menu is a read-only view over a fixed item table. The zero value is empty;
// use Default for the shop's own menu.
type Menu struct {
	items      []domain.MenuItem
	categories []domain.CategoryInfo
	byID       map[string]int
}

func NewMenu(items []domain.MenuItem, cats []domain.CategoryInfo) *Menu {
	m := &Menu{
		items:      append([]domain.MenuItem(nil), items...),
		categories: append([]domain.CategoryInfo(nil), cats...),
		byID:       make(map[string]int, len(items)),
	}
	for i, it := range m.items {
		m.byID[it.ID] = i
	}
	return m
}

func Default() *Menu {
	return NewMenu(menuItems, categories)
}

func (m *Menu) Get(id string) (domain.MenuItem, bool) {
	i, ok := m.byID[id]
	if !ok {
		return domain.MenuItem{}, false
	}
	return m.items[i], true
}

func (m *Menu) All() []domain.MenuItem {
	return append([]domain.MenuItem(nil), m.items...)
}

func (m *Menu) Available() []domain.MenuItem {
	return m.filter(func(it domain.MenuItem) bool { return it.Available })
}

func (m *Menu) ByCategory(c domain.Category) []domain.MenuItem {
	return m.filter(func(it domain.MenuItem) bool { return it.Category == c && it.Available })
}

func (m *Menu) Signature() []domain.MenuItem {
	return m.filter(func(it domain.MenuItem) bool { return it.IsSignature && it.Available })
}

func (m *Menu) Categories() []domain.CategoryInfo {
	return append([]domain.CategoryInfo(nil), m.categories...)
}

func (m *Menu) filter(keep func(domain.MenuItem) bool) []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, it := range m.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
