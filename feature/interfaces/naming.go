package interfaces

import (
	"fmt"
	"net"
	"net/netip"
	"regexp"
	"strings"
)

var interfaceNameRe = regexp.MustCompile(`(?i)^([a-z\-]+)([\d/\.]+)`)

// CompareInterfaces loosely compares two interface names: the numeric/path
// suffixes must be equal and one alphabetic prefix must start with the other,
// case-insensitively, so "eth0/1" matches "Ethernet0/1". Names without a
// numeric suffix never match.
func CompareInterfaces(a, b string) bool {
	ma := interfaceNameRe.FindStringSubmatch(a)
	mb := interfaceNameRe.FindStringSubmatch(b)
	if ma == nil || mb == nil {
		return false
	}
	if ma[2] != mb[2] {
		return false
	}
	pa, pb := strings.ToLower(ma[1]), strings.ToLower(mb[1])
	return strings.HasPrefix(pa, pb) || strings.HasPrefix(pb, pa)
}

// NormalizeAddress returns addr in prefix notation. A bare address gets a host
// prefix (/32 or /128); "10.0.0.1 255.255.255.0" is accepted as well.
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)

	if ip, mask, found := strings.Cut(addr, " "); found {
		m := net.ParseIP(strings.TrimSpace(mask)).To4()
		if m == nil {
			return "", fmt.Errorf("invalid netmask in %q", addr)
		}
		ones, bits := net.IPMask(m).Size()
		if bits == 0 {
			return "", fmt.Errorf("non-contiguous netmask in %q", addr)
		}
		addr = fmt.Sprintf("%s/%d", ip, ones)
	}

	if p, err := netip.ParsePrefix(addr); err == nil {
		return p.String(), nil
	}
	a, err := netip.ParseAddr(addr)
	if err != nil {
		return "", fmt.Errorf("invalid ip address %q", addr)
	}
	return netip.PrefixFrom(a, a.BitLen()).String(), nil
}

// NormalizeMAC returns mac in colon notation when it parses, otherwise
// the input unchanged. Cisco dotted notation is accepted.
func NormalizeMAC(mac string) string {
	mac = strings.TrimSpace(mac)
	if hw, err := net.ParseMAC(mac); err == nil {
		return strings.ToUpper(hw.String())
	}
	return mac
}
