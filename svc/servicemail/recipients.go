package servicemail

import "strings"

const ccDomain = "bestbuy.com"

// ccLists are the distribution lists copied on every message, in order.
var ccLists = []string{"SHIFTLEADERS", "PRECINCT"}

// GenerateCCEmails returns the semicolon-separated store distribution lists
// for a canonical 4-digit store number.
func GenerateCCEmails(store string) string {
	siteCode := "00" + store

	addrs := make([]string, 0, len(ccLists))
	for _, list := range ccLists {
		addrs = append(addrs, "BBY-DL-STORE-"+siteCode+"-"+list+"@"+ccDomain)
	}
	return strings.Join(addrs, ";")
}
