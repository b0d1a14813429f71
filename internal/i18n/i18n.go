// Package i18n serves the presentation layer's translation strings as a
// closed catalog. A lookup miss is an error, never a silent fallback to the
// key, so missing translations surface instead of shipping.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Key identifies one translatable message.
type Key string

const (
	AuthTitle          Key = "auth.title"
	AuthSubtitle       Key = "auth.subtitle"
	AuthPhoneLabel     Key = "auth.phoneLabel"
	AuthSendOTP        Key = "auth.sendOtp"
	AuthOTPLabel       Key = "auth.otpLabel"
	AuthVerify         Key = "auth.verify"
	AuthOTPSent        Key = "auth.otpSent"
	AuthOTPExpired     Key = "auth.otpExpired"
	AuthInvalidOTP     Key = "auth.invalidOtp"
	DashboardTitle     Key = "dashboard.title"
	DashboardLayout    Key = "dashboard.viewLayout"
	DashboardReceipts  Key = "dashboard.receiptForm"
	DashboardLogout    Key = "dashboard.logout"
	LayoutTitle        Key = "layout.title"
	LayoutAvailable    Key = "layout.available"
	LayoutBooked       Key = "layout.booked"
	LayoutReserved     Key = "layout.reserved"
	LayoutClientName   Key = "layout.clientName"
	LayoutPhone        Key = "layout.phone"
	LayoutStatus       Key = "layout.status"
	FormTitle          Key = "form.title"
	FormTentNumber     Key = "form.tentNumber"
	FormClientName     Key = "form.clientName"
	FormPhone          Key = "form.phone"
	FormBookingDate    Key = "form.bookingDate"
	FormPrice          Key = "form.price"
	FormUsage          Key = "form.usage"
	FormServices       Key = "form.additionalServices"
	FormElectricity    Key = "form.electricity"
	FormChairs         Key = "form.chairs"
	FormTable          Key = "form.table"
	FormZones          Key = "form.advertisingZones"
	FormCarFlags       Key = "form.carFlags"
	FormBannerFlags    Key = "form.bannerFlags"
	FormNotes          Key = "form.notes"
	FormGenerate       Key = "form.generateReceipt"
	FormTentBooked     Key = "form.tentAlreadyBooked"
	FormReceiptCreated Key = "form.receiptGenerated"
)

var (
	English = language.English
	Arabic  = language.Arabic
)

// SupportedLocales lists the locales the desk ships catalogs for.
var SupportedLocales = []language.Tag{English, Arabic}

var catalogs = map[language.Tag]map[Key]string{
	English: {
		AuthTitle:          "Tripoli Karting Race 2025",
		AuthSubtitle:       "Tent Reservation System",
		AuthPhoneLabel:     "Phone Number",
		AuthSendOTP:        "Send OTP",
		AuthOTPLabel:       "Enter OTP Code",
		AuthVerify:         "Verify & Login",
		AuthOTPSent:        "OTP sent to your phone",
		AuthOTPExpired:     "OTP expired, please request a new one",
		AuthInvalidOTP:     "Invalid OTP code",
		DashboardTitle:     "Tent Management Dashboard",
		DashboardLayout:    "View Tent Layout",
		DashboardReceipts:  "Receipt Generator",
		DashboardLogout:    "Logout",
		LayoutTitle:        "Tent Layout - Tripoli Karting Race 2025",
		LayoutAvailable:    "Available",
		LayoutBooked:       "Booked",
		LayoutReserved:     "Reserved",
		LayoutClientName:   "Client Name",
		LayoutPhone:        "Phone Number",
		LayoutStatus:       "Status",
		FormTitle:          "Generate Receipt",
		FormTentNumber:     "Tent Number",
		FormClientName:     "Client Full Name",
		FormPhone:          "Phone Number",
		FormBookingDate:    "Booking Date",
		FormPrice:          "Price",
		FormUsage:          "Usage Purpose",
		FormServices:       "Additional Services",
		FormElectricity:    "Electricity",
		FormChairs:         "Chairs",
		FormTable:          "Table",
		FormZones:          "Advertising Zone Selection",
		FormCarFlags:       "Car Flags",
		FormBannerFlags:    "Banner Flags",
		FormNotes:          "Notes",
		FormGenerate:       "Generate Receipt",
		FormTentBooked:     "This tent is already booked",
		FormReceiptCreated: "Receipt generated successfully",
	},
	Arabic: {
		AuthTitle:          "مهرجان طرابلس للكارتينج ٢٠٢٥",
		AuthSubtitle:       "نظام حجز الخيام",
		AuthPhoneLabel:     "رقم الهاتف",
		AuthSendOTP:        "إرسال الرمز",
		AuthOTPLabel:       "أدخل رمز التحقق",
		AuthVerify:         "تحقق و دخول",
		AuthOTPSent:        "تم إرسال الرمز إلى هاتفك",
		AuthOTPExpired:     "انتهت صلاحية الرمز، يرجى طلب رمز جديد",
		AuthInvalidOTP:     "رمز التحقق غير صحيح",
		DashboardTitle:     "لوحة تحكم الخيام",
		DashboardLayout:    "عرض الخيام",
		DashboardReceipts:  "إنشاء وصل",
		DashboardLogout:    "تسجيل خروج",
		LayoutTitle:        "مخطط الخيام - مهرجان طرابلس للكارتينج ٢٠٢٥",
		LayoutAvailable:    "متاحة",
		LayoutBooked:       "محجوزة",
		LayoutReserved:     "مُحتَجزة",
		LayoutClientName:   "اسم العميل",
		LayoutPhone:        "رقم الهاتف",
		LayoutStatus:       "الحالة",
		FormTitle:          "إنشاء وصل",
		FormTentNumber:     "رقم الخيمة",
		FormClientName:     "اسم العميل الكامل",
		FormPhone:          "رقم الهاتف",
		FormBookingDate:    "تاريخ الحجز",
		FormPrice:          "السعر",
		FormUsage:          "جهة الاستعمال",
		FormServices:       "خدمات إضافية",
		FormElectricity:    "كهرباء",
		FormChairs:         "كراسي",
		FormTable:          "طاولة",
		FormZones:          "اختيار مناطق الإعلانات",
		FormCarFlags:       "أعلام على السيارات",
		FormBannerFlags:    "أعلام على الأرصفة",
		FormNotes:          "ملاحظات",
		FormGenerate:       "إنشاء وصل",
		FormTentBooked:     "هذه الخيمة محجوزة مسبقاً",
		FormReceiptCreated: "تم إنشاء الوصل بنجاح",
	},
}

// ParseLocale resolves a locale string against the supported set.
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("unknown locale %q", s)
	}
	matcher := language.NewMatcher(SupportedLocales)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported locale %q", s)
	}
	return SupportedLocales[idx], nil
}

// Lookup returns the message for key in the given locale. A miss is an
// explicit error.
func Lookup(locale language.Tag, key Key) (string, error) {
	catalog, ok := catalogs[locale]
	if !ok {
		return "", fmt.Errorf("no catalog for locale %s", locale)
	}
	msg, ok := catalog[key]
	if !ok {
		return "", fmt.Errorf("unknown message key %q for locale %s", key, locale)
	}
	return msg, nil
}

// Catalog returns a copy of the full catalog for a locale, keyed by message
// id, for the presentation layer to consume in one request.
func Catalog(locale language.Tag) (map[Key]string, error) {
	catalog, ok := catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("no catalog for locale %s", locale)
	}
	out := make(map[Key]string, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out, nil
}
