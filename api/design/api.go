package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("inquiryapi", func() {
	Title("Inquiry API")
	Description("Backend API for the website inquiry form with file attachments")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Health and diagnostics
var _ = Service("health", func() {
	Description("Liveness and diagnostic endpoints")

	Method("root", func() {
		Description("Static liveness message")
		Result(RootResult)
		HTTP(func() {
			GET("/")
			Response(StatusOK)
		})
	})

	Method("check", func() {
		Description("Health check")
		Result(HealthResult)
		HTTP(func() {
			GET("/api/health")
			Response(StatusOK)
		})
	})

	Method("test", func() {
		Description("Report document store connectivity and configured environment")
		Result(TestResult)
		HTTP(func() {
			GET("/test")
			Response(StatusOK)
		})
	})
})

var RootResult = Type("RootResult", func() {
	Attribute("message", String, "Status message", func() {
		Example("Backend läuft")
	})
	Required("message")
})

var HealthResult = Type("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("ok")
	})
	Required("status")
})

var TestResult = Type("TestResult", func() {
	Attribute("backend", String, "Backend status")
	Attribute("database", String, "Document store status")
	Attribute("database_url", String, "Whether DATABASE_URL is set")
	Attribute("database_name", String, "Whether DATABASE_NAME is set")
	Attribute("connection_status", String, "Connection status")
	Attribute("collections", ArrayOf(String), "First collections found in the store")
	Required("backend", "database", "database_url", "database_name", "connection_status", "collections")
})

// Inquiry intake
var _ = Service("inquiry", func() {
	Description("Inquiry form intake")
	Error("bad_request")
	Error("upload_failed")
	Error("database_error")

	Method("submit", func() {
		Description("Submit an inquiry with optional file attachments")
		Payload(InquirySubmitPayload)
		Result(InquirySubmitResult)
		Error("bad_request")
		Error("upload_failed")
		Error("database_error")
		HTTP(func() {
			POST("/api/inquiries")
			MultipartRequest()
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("upload_failed", StatusInternalServerError)
			Response("database_error", StatusInternalServerError)
		})
	})
})

var UploadedFile = Type("UploadedFile", func() {
	Attribute("filename", String, "Filename as sent by the client")
	Attribute("content_type", String, "Declared content type")
	Attribute("content", Bytes, "File content")
	Required("filename", "content")
})

// Form values are optional at the transport level so that a missing field can be
// told apart from an empty one during validation.
var InquirySubmitPayload = Type("InquirySubmitPayload", func() {
	Attribute("name", String, "Name des Anfragenden", func() {
		Example("Max Mustermann")
	})
	Attribute("email", String, "E-Mail-Adresse", func() {
		Example("max@example.com")
	})
	Attribute("phone", String, "Telefonnummer", func() {
		Example("0123456789")
	})
	Attribute("zip_city", String, "Postleitzahl / Ort des Bauvorhabens", func() {
		Example("12345 Berlin")
	})
	Attribute("project_type", String, "Art des Vorhabens", func() {
		Example("Neubau")
	})
	Attribute("description", String, "Kurzbeschreibung des Bauvorhabens", func() {
		Example("Einfamilienhaus")
	})
	Attribute("source", String, "Quelle der Anfrage, z. B. Website-Seite")
	Attribute("files", ArrayOf(UploadedFile), "Hochgeladene Dateien")
})

var InquirySubmitResult = Type("InquirySubmitResult", func() {
	Attribute("id", String, "Generated inquiry ID")
	Attribute("message", String, "Success message", func() {
		Example("Anfrage erfolgreich übermittelt")
	})
	Required("id", "message")
})
