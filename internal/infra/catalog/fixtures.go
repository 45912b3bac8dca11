package catalog

import "giftie/internal/domain/entity"

// The storefront sells a fixed assortment of Vietnamese souvenirs. The
// catalog is loaded once at startup and never changes while running.

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{
			ID:            "1",
			Name:          "Móc khóa Hà Nội",
			Description:   "Móc khóa đẹp với hình ảnh Hồ Hoàn Kiếm, chất liệu cao cấp",
			Price:         150000,
			OriginalPrice: 200000,
			Images:        []string{"https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=400&h=300&fit=crop"},
			Category:      "moc-khoa",
			Tags:          []string{"Hà Nội", "Móc khóa", "Quà tặng"},
			InStock:       true,
			Rating:        4.5,
			ReviewCount:   128,
		},
		{
			ID:            "2",
			Name:          "Túi xách Sapa",
			Description:   "Túi xách thổ cẩm Sapa, thủ công mỹ nghệ",
			Price:         450000,
			OriginalPrice: 600000,
			Images:        []string{"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=300&fit=crop"},
			Category:      "tui-xach",
			Tags:          []string{"Sapa", "Thổ cẩm", "Túi xách"},
			InStock:       true,
			Rating:        4.8,
			ReviewCount:   89,
		},
		{
			ID:            "3",
			Name:          "Áo thun Đà Nẵng",
			Description:   "Áo thun với hình ảnh biển Đà Nẵng, chất liệu cotton 100%",
			Price:         250000,
			OriginalPrice: 350000,
			Images:        []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop"},
			Category:      "ao-thun",
			Tags:          []string{"Đà Nẵng", "Áo thun", "Biển"},
			InStock:       true,
			Rating:        4.3,
			ReviewCount:   156,
		},
		{
			ID:            "4",
			Name:          "Móc khóa Hội An",
			Description:   "Móc khóa với hình ảnh phố cổ Hội An về đêm",
			Price:         120000,
			OriginalPrice: 180000,
			Images:        []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"},
			Category:      "moc-khoa",
			Tags:          []string{"Hội An", "Phố cổ", "Móc khóa"},
			InStock:       true,
			Rating:        4.7,
			ReviewCount:   203,
		},
		{
			ID:            "5",
			Name:          "Túi xách Huế",
			Description:   "Túi xách với họa tiết hoa sen Huế, chất liệu vải lụa",
			Price:         380000,
			OriginalPrice: 500000,
			Images:        []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400&h=300&fit=crop"},
			Category:      "tui-xach",
			Tags:          []string{"Huế", "Hoa sen", "Lụa"},
			InStock:       true,
			Rating:        4.6,
			ReviewCount:   67,
		},
		{
			ID:            "6",
			Name:          "Áo thun Sài Gòn",
			Description:   "Áo thun với hình ảnh Landmark 81, chất liệu cotton cao cấp",
			Price:         280000,
			OriginalPrice: 400000,
			Images:        []string{"https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=400&h=300&fit=crop"},
			Category:      "ao-thun",
			Tags:          []string{"Sài Gòn", "Landmark 81", "Áo thun"},
			InStock:       true,
			Rating:        4.4,
			ReviewCount:   134,
		},
		{
			ID:            "7",
			Name:          "Móc khóa Nha Trang",
			Description:   "Móc khóa với hình ảnh biển Nha Trang xanh ngắt",
			Price:         130000,
			OriginalPrice: 190000,
			Images:        []string{"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400&h=300&fit=crop"},
			Category:      "moc-khoa",
			Tags:          []string{"Nha Trang", "Biển", "Móc khóa"},
			InStock:       true,
			Rating:        4.2,
			ReviewCount:   98,
		},
		{
			ID:            "8",
			Name:          "Túi xách Đà Lạt",
			Description:   "Túi xách với họa tiết hoa dã quỳ Đà Lạt",
			Price:         420000,
			OriginalPrice: 580000,
			Images:        []string{"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=300&fit=crop"},
			Category:      "tui-xach",
			Tags:          []string{"Đà Lạt", "Hoa dã quỳ", "Túi xách"},
			InStock:       true,
			Rating:        4.9,
			ReviewCount:   76,
		},
		{
			ID:            "9",
			Name:          "Áo thun Phú Quốc",
			Description:   "Áo thun với hình ảnh biển Phú Quốc hoàng hôn",
			Price:         260000,
			OriginalPrice: 380000,
			Images:        []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop"},
			Category:      "ao-thun",
			Tags:          []string{"Phú Quốc", "Hoàng hôn", "Áo thun"},
			InStock:       true,
			Rating:        4.5,
			ReviewCount:   112,
		},
		{
			ID:            "10",
			Name:          "Móc khóa Cần Thơ",
			Description:   "Móc khóa với hình ảnh chợ nổi Cái Răng",
			Price:         110000,
			OriginalPrice: 170000,
			Images:        []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"},
			Category:      "moc-khoa",
			Tags:          []string{"Cần Thơ", "Chợ nổi", "Móc khóa"},
			InStock:       true,
			Rating:        4.3,
			ReviewCount:   87,
		},
		{
			ID:            "11",
			Name:          "Túi xách Côn Đảo",
			Description:   "Túi xách với họa tiết biển Côn Đảo hoang dã",
			Price:         480000,
			OriginalPrice: 650000,
			Images:        []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400&h=300&fit=crop"},
			Category:      "tui-xach",
			Tags:          []string{"Côn Đảo", "Biển", "Túi xách"},
			InStock:       true,
			Rating:        4.7,
			ReviewCount:   45,
		},
		{
			ID:            "12",
			Name:          "Áo thun Mũi Né",
			Description:   "Áo thun với hình ảnh đồi cát Mũi Né",
			Price:         240000,
			OriginalPrice: 360000,
			Images:        []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop"},
			Category:      "ao-thun",
			Tags:          []string{"Mũi Né", "Đồi cát", "Áo thun"},
			InStock:       true,
			Rating:        4.4,
			ReviewCount:   93,
		},
		{
			ID:            "13",
			Name:          "Móc khóa Vũng Tàu",
			Description:   "Móc khóa với hình ảnh tượng Chúa Kitô Vũng Tàu",
			Price:         140000,
			OriginalPrice: 200000,
			Images:        []string{"https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=400&h=300&fit=crop"},
			Category:      "moc-khoa",
			Tags:          []string{"Vũng Tàu", "Tượng Chúa", "Móc khóa"},
			InStock:       true,
			Rating:        4.1,
			ReviewCount:   156,
		},
		{
			ID:            "14",
			Name:          "Túi xách Bà Rịa",
			Description:   "Túi xách với họa tiết hoa sen Bà Rịa",
			Price:         390000,
			OriginalPrice: 520000,
			Images:        []string{"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=300&fit=crop"},
			Category:      "tui-xach",
			Tags:          []string{"Bà Rịa", "Hoa sen", "Túi xách"},
			InStock:       true,
			Rating:        4.6,
			ReviewCount:   78,
		},
		{
			ID:            "15",
			Name:          "Áo thun Long An",
			Description:   "Áo thun với hình ảnh đồng lúa Long An",
			Price:         220000,
			OriginalPrice: 320000,
			Images:        []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop"},
			Category:      "ao-thun",
			Tags:          []string{"Long An", "Đồng lúa", "Áo thun"},
			InStock:       true,
			Rating:        4.3,
			ReviewCount:   67,
		},
		{
			ID:            "16",
			Name:          "Móc khóa Tiền Giang",
			Description:   "Móc khóa với hình ảnh cầu Rạch Miễu",
			Price:         125000,
			OriginalPrice: 185000,
			Images:        []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop"},
			Category:      "moc-khoa",
			Tags:          []string{"Tiền Giang", "Cầu Rạch Miễu", "Móc khóa"},
			InStock:       true,
			Rating:        4.0,
			ReviewCount:   89,
		},
		{
			ID:            "17",
			Name:          "Túi xách Bến Tre",
			Description:   "Túi xách với họa tiết dừa Bến Tre",
			Price:         410000,
			OriginalPrice: 550000,
			Images:        []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400&h=300&fit=crop"},
			Category:      "tui-xach",
			Tags:          []string{"Bến Tre", "Dừa", "Túi xách"},
			InStock:       true,
			Rating:        4.5,
			ReviewCount:   54,
		},
		{
			ID:            "18",
			Name:          "Áo thun Trà Vinh",
			Description:   "Áo thun với hình ảnh chùa Vàm Ray",
			Price:         230000,
			OriginalPrice: 340000,
			Images:        []string{"https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=400&h=300&fit=crop"},
			Category:      "ao-thun",
			Tags:          []string{"Trà Vinh", "Chùa Vàm Ray", "Áo thun"},
			InStock:       true,
			Rating:        4.2,
			ReviewCount:   43,
		},
	}
}

func fixtureCategories() []entity.Category {
	return []entity.Category{
		{
			ID:          "moc-khoa",
			Name:        "Móc khóa",
			Description: "Móc khóa đẹp từ các vùng miền Việt Nam",
			Image:       "https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=300&h=200&fit=crop",
		},
		{
			ID:          "tui-xach",
			Name:        "Túi xách",
			Description: "Túi xách thổ cẩm và thủ công mỹ nghệ",
			Image:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=300&h=200&fit=crop",
		},
		{
			ID:          "ao-thun",
			Name:        "Áo thun",
			Description: "Áo thun với hình ảnh đặc trưng các vùng miền",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=200&fit=crop",
		},
	}
}

func fixturePaymentMethods() []entity.PaymentMethod {
	return []entity.PaymentMethod{
		{
			ID:          "cod",
			Name:        "Thanh toán khi nhận hàng",
			Type:        entity.PaymentMethodCOD,
			Icon:        "💰",
			Description: "Thanh toán bằng tiền mặt khi nhận hàng",
		},
		{
			ID:          "bank",
			Name:        "Chuyển khoản ngân hàng",
			Type:        entity.PaymentMethodBank,
			Icon:        "🏦",
			Description: "Chuyển khoản qua tài khoản ngân hàng",
		},
		{
			ID:          "card",
			Name:        "Thẻ tín dụng/ghi nợ",
			Type:        entity.PaymentMethodCard,
			Icon:        "💳",
			Description: "Thanh toán bằng thẻ Visa, Mastercard",
		},
	}
}
