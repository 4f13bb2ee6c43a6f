package aggregate

import (
	"sort"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// Thứ tự trả về cố định theo từng loại dữ liệu; ngày so sánh bằng
// khóa YYYYMMDD nên ngày rỗng (khóa rỗng) luôn chìm xuống cuối khi
// xếp giảm dần.

func sortDaily(recs []model.DailyCustomerStat) {
	sort.SliceStable(recs, func(i, j int) bool {
		ki, kj := normalize.DateKey(recs[i].Date), normalize.DateKey(recs[j].Date)
		if ki != kj {
			return ki > kj // ngày mới nhất lên đầu
		}
		if recs[i].Customers != recs[j].Customers {
			return recs[i].Customers > recs[j].Customers
		}
		return recs[i].Driver < recs[j].Driver
	})
}

func sortSelf(recs []model.SelfCustomerStat) {
	sort.SliceStable(recs, func(i, j int) bool {
		ki, kj := normalize.DateKey(recs[i].Date), normalize.DateKey(recs[j].Date)
		if ki != kj {
			return ki > kj
		}
		if recs[i].Customers != recs[j].Customers {
			return recs[i].Customers > recs[j].Customers
		}
		return recs[i].Driver < recs[j].Driver
	})
}

func sortTransit(recs []model.TransitStat) {
	sort.SliceStable(recs, func(i, j int) bool {
		ki, kj := normalize.DateKey(recs[i].Date), normalize.DateKey(recs[j].Date)
		if ki != kj {
			return ki > kj
		}
		return recs[i].Driver < recs[j].Driver
	})
}

func sortPhone(recs []model.PhoneStat) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Trips != recs[j].Trips {
			return recs[i].Trips > recs[j].Trips
		}
		return recs[i].Phone < recs[j].Phone
	})
}

func sortPricing(recs []model.PricingStat) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Revenue != recs[j].Revenue {
			return recs[i].Revenue > recs[j].Revenue
		}
		return recs[i].RouteGroup < recs[j].RouteGroup
	})
}
