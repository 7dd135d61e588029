package discovery

import (
	"fmt"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeAgentTXT creates TXT records for fulfillment agent discovery.
func EncodeAgentTXT(info *AgentInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	// Required fields
	txt[TXTKeyAgentUserID] = info.AgentUserID
	txt[TXTKeyVersion] = ProtocolVersion

	// Optional fields
	if len(info.DeviceIDs) > 0 {
		txt[TXTKeyDeviceIDs] = strings.Join(info.DeviceIDs, ",")
	}
	if info.DisplayName != "" {
		txt[TXTKeyDisplayName] = info.DisplayName
	}

	return txt
}

// DecodeAgentTXT parses TXT records from fulfillment agent discovery.
func DecodeAgentTXT(txt TXTRecordMap) (*AgentInfo, error) {
	info := &AgentInfo{}

	// Parse agent user id (required)
	var ok bool
	info.AgentUserID, ok = txt[TXTKeyAgentUserID]
	if !ok || info.AgentUserID == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyAgentUserID)
	}

	// Parse version (required)
	version, ok := txt[TXTKeyVersion]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyVersion)
	}
	if version != ProtocolVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidTXTRecord, version)
	}

	// Optional fields
	if ids, ok := txt[TXTKeyDeviceIDs]; ok && ids != "" {
		for _, id := range strings.Split(ids, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			info.DeviceIDs = append(info.DeviceIDs, id)
		}
	}
	info.DisplayName = txt[TXTKeyDisplayName]

	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value"
// strings, the form mDNS libraries take.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a
// TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInstanceNameTooLong)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
