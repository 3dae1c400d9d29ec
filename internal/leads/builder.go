package leads

import "strings"

// slot selects the record field a given question cursor writes to.
type slot func(*ChatData) *string

// slotTables maps each service kind to its ordered answer slots. Cursor
// positions beyond the table append to Features. The same cursor value lands
// in a different field depending on the active service branch.
var slotTables = map[ServiceKind][]slot{
	ServiceOnlineShop: {
		func(d *ChatData) *string { return &d.ProductCount },
		func(d *ChatData) *string { return &d.AdditionalInfo },
	},
	ServiceLanding: {
		func(d *ChatData) *string { return &d.PageCount },
		func(d *ChatData) *string { return &d.DesignStyle },
	},
	ServiceCorporate: {
		func(d *ChatData) *string { return &d.PageCount },
		func(d *ChatData) *string { return &d.DesignStyle },
	},
	ServiceWebApp: {
		func(d *ChatData) *string { return &d.AppFunctions },
		func(d *ChatData) *string { return &d.AdditionalInfo },
	},
	ServiceCRM: {
		func(d *ChatData) *string { return &d.AutomationType },
		func(d *ChatData) *string { return &d.AdditionalInfo },
	},
	ServiceSEO: {
		func(d *ChatData) *string { return &d.CurrentWebsite },
	},
	ServiceMarketing: {
		func(d *ChatData) *string { return &d.AdditionalInfo },
	},
	ServicePayment: {
		func(d *ChatData) *string { return &d.PaymentSystems },
	},
	ServiceAutomation: {
		func(d *ChatData) *string { return &d.AutomationType },
	},
	ServiceTelegramBot: {
		func(d *ChatData) *string { return &d.AppFunctions },
		func(d *ChatData) *string { return &d.AdditionalInfo },
	},
	ServiceRedesign: {
		func(d *ChatData) *string { return &d.CurrentWebsite },
		func(d *ChatData) *string { return &d.DesignStyle },
	},
}

// Fold writes one answered question into the record. The cursor is the
// zero-based index of the question that was just answered.
func Fold(d *ChatData, kind ServiceKind, cursor int, answer string) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return
	}

	slots, ok := slotTables[kind]
	if !ok {
		// Unrecognized service: two-slot fallback into AdditionalInfo.
		if cursor == 0 || d.AdditionalInfo == "" {
			d.AdditionalInfo = answer
			return
		}
		d.AdditionalInfo += "; " + answer
		return
	}

	if cursor < len(slots) {
		*slots[cursor](d) = answer
		return
	}
	d.Features = append(d.Features, answer)
}
