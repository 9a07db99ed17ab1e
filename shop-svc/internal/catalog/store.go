package catalog

import (
	"net/url"
	"time"

	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/format"
)

type Address struct {
	Province   string `json:"province"`
	City       string `json:"city"`
	District   string `json:"district"`
	Street     string `json:"street"`
	Full       string `json:"full"`
	Navigation string `json:"navigation"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StoreInfo struct {
	Name          string             `json:"name"`
	Slogan        string             `json:"slogan"`
	Description   string             `json:"description"`
	Phone         string             `json:"phone"`
	Mobile        string             `json:"mobile"`
	Email         string             `json:"email"`
	Address       Address            `json:"address"`
	Coordinates   Coordinates        `json:"coordinates"`
	HoursSummary  string             `json:"business_hours"`
	Features      []string           `json:"features"`
	Photos        []string           `json:"photos"`
	WeeklyHours   domain.WeeklyHours `json:"-"`
	SocialHandles map[string]string  `json:"social"`
}

const mapSearchBase = "https://www.amap.com/search"

func dailyHours(open, close string) domain.WeeklyHours {
	hours := domain.WeeklyHours{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours[d] = domain.DayHours{Open: open, Close: close, IsOpen: true}
	}
	return hours
}

var store = StoreInfo{
	Name:        "铁蛋鸡汤刀削面",
	Slogan:      "传承经典，匠心熬制",
	Description: "铁蛋鸡汤刀削面秉承传统工艺，精选优质老母鸡，文火慢熬8小时，汤色金黄，鲜香浓郁。手工刀削面现做现煮，面条劲道爽滑，每一口都是对传统美食的致敬。",
	Phone:       "15399189170",
	Mobile:      "15399189170",
	Email:       "1552356639@qq.com",
	Address: Address{
		Province:   "陕西省",
		City:       "西安市",
		District:   "未央区",
		Street:     "景云路",
		Full:       "陕西省西安市未央区铁蛋鸡汤刀削面（景云路）店",
		Navigation: "西安市未央区恒大帝景二期㇏10栋3-126号一层商铺",
	},
	Coordinates:  Coordinates{Lat: 34.3127, Lng: 108.9398},
	HoursSummary: "每天 08:30-次日02:30",
	Features:     []string{"传统工艺", "手工刀削", "8小时熬汤", "现做现煮", "老母鸡汤"},
	Photos: []string{
		"/images/store/storefront.jpg",
		"/images/store/interior-1.jpg",
		"/images/store/interior-2.jpg",
		"/images/store/kitchen.jpg",
		"/images/store/dining-area.jpg",
	},
	WeeklyHours: dailyHours("08:30", "02:30"),
	SocialHandles: map[string]string{
		"wechat": "tiedan-noodle",
		"weibo":  "@铁蛋鸡汤刀削面",
		"douyin": "@铁蛋鸡汤刀削面",
	},
}

// Store returns a copy of the shop's static information.
func Store() StoreInfo {
	info := store
	info.WeeklyHours = make(domain.WeeklyHours, len(store.WeeklyHours))
	for d, h := range store.WeeklyHours {
		info.WeeklyHours[d] = h
	}
	return info
}

func (s StoreInfo) MapURL() string {
	return mapSearchBase + "?query=" + url.QueryEscape(s.Address.Navigation) +
		"&city=" + url.QueryEscape(s.Address.City)
}

// TelLink builds a dialer link. kind is "phone" or "mobile"; anything else
// falls back to the mobile number.
func (s StoreInfo) TelLink(kind string) string {
	if kind == "phone" {
		return "tel:" + s.Phone
	}
	return "tel:" + s.Mobile
}

func (s StoreInfo) FormattedMobile() string {
	return format.Phone(s.Mobile, format.PhoneDashed)
}
