package errors

// DumpInfo is a flattened view of an error chain for log output.
type DumpInfo struct {
	Code       Code
	TopMessage string
	Chain      []string
}

// Dump walks the unwrap chain so handlers can log the full cause path.
func Dump(err error) DumpInfo {
	info := DumpInfo{Code: CodeInternal}
	if err == nil {
		return info
	}
	if typed := As(err); typed != nil {
		info.Code = typed.Code()
	}
	info.TopMessage = err.Error()
	for err != nil {
		info.Chain = append(info.Chain, err.Error())
		err = unwrapOne(err)
	}
	return info
}

func unwrapOne(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
