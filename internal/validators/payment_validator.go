package validators

// CapturePaymentRequest carries the identifiers the gateway hands the
// customer's client after checkout. All three are mandatory; the signature
// is verified before any state is touched.
type CapturePaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type RegisterBankDetailRequest struct {
	AccountHolderName     string `json:"account_holder_name" validate:"required,min=2,max=100"`
	AccountNumber         string `json:"account_number" validate:"required,min=9,max=18,numeric"`
	IFSCCode              string `json:"ifsc_code" validate:"required,ifsc_code"`
	RazorpayFundAccountID string `json:"razorpay_fund_account_id" validate:"required"`
}

func ValidateCapturePayment(req *CapturePaymentRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateRegisterBankDetail(req *RegisterBankDetailRequest) ValidationErrors {
	return ValidateStruct(req)
}
